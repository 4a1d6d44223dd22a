package models

import "time"

// QueryStats aggregates one labelled report query.
type QueryStats struct {
	Count     uint64  `json:"count"`
	AverageMs float64 `json:"average_ms"`
	MaxMs     float64 `json:"max_ms"`
}

// SystemMetrics is the JSON summary served next to the Prometheus endpoint.
type SystemMetrics struct {
	UptimeSeconds  float64               `json:"uptime_seconds"`
	Requests       uint64                `json:"requests"`
	ServerErrors   uint64                `json:"server_errors"`
	AverageLatency float64               `json:"average_latency_ms"`
	Queries        map[string]QueryStats `json:"queries"`
	Goroutines     int                   `json:"goroutines"`
	GeneratedAt    time.Time             `json:"generated_at"`
}
