package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/sma-timetable-api/internal/models"
)

type queryTally struct {
	count uint64
	total time.Duration
	max   time.Duration
}

// MetricsService owns the Prometheus registry and keeps running totals for
// the JSON summary.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler
	started  time.Time
	now      func() time.Time

	httpLatency  *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	queryLatency *prometheus.HistogramVec

	mu           sync.Mutex
	requests     uint64
	serverErrors uint64
	latencyTotal time.Duration
	queries      map[string]*queryTally
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	labels := []string{"method", "route", "status"}
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timetable",
		Name:      "http_request_duration_seconds",
		Help:      "Latency of API requests by route.",
		Buckets:   prometheus.DefBuckets,
	}, labels)
	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timetable",
		Name:      "http_requests_total",
		Help:      "API requests by route and status.",
	}, labels)
	queryLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timetable",
		Name:      "report_query_duration_seconds",
		Help:      "Latency of report queries by name.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"query"})
	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Goroutines currently running.",
	}, func() float64 { return float64(runtime.NumGoroutine()) })

	registry.MustRegister(httpLatency, httpRequests, queryLatency, goroutines)

	return &MetricsService{
		registry:     registry,
		handler:      promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		started:      time.Now(),
		now:          time.Now,
		httpLatency:  httpLatency,
		httpRequests: httpRequests,
		queryLatency: queryLatency,
		queries:      make(map[string]*queryTally),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one finished API request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	code := strconv.Itoa(status)
	m.httpLatency.WithLabelValues(method, path, code).Observe(duration.Seconds())
	m.httpRequests.WithLabelValues(method, path, code).Inc()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
	m.latencyTotal += duration
	if status >= http.StatusInternalServerError {
		m.serverErrors++
	}
}

// ObserveDBQuery records the latency of one labelled report query.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.queryLatency.WithLabelValues(label).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.queries[label]
	if !ok {
		t = &queryTally{}
		m.queries[label] = t
	}
	t.count++
	t.total += duration
	if duration > t.max {
		t.max = duration
	}
}

// Snapshot copies the running totals.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{Queries: map[string]models.QueryStats{}}
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := models.SystemMetrics{
		UptimeSeconds: now.Sub(m.started).Seconds(),
		Requests:      m.requests,
		ServerErrors:  m.serverErrors,
		Queries:       make(map[string]models.QueryStats, len(m.queries)),
		Goroutines:    runtime.NumGoroutine(),
		GeneratedAt:   now.UTC(),
	}
	if m.requests > 0 {
		out.AverageLatency = millis(m.latencyTotal) / float64(m.requests)
	}
	for label, t := range m.queries {
		out.Queries[label] = models.QueryStats{
			Count:     t.count,
			AverageMs: millis(t.total) / float64(t.count),
			MaxMs:     millis(t.max),
		}
	}
	return out
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
