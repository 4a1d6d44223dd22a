package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-timetable-api/internal/service"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestMetricsHandlerReady(t *testing.T) {
	ok := NewMetricsHandler(nil, pingFunc(func(context.Context) error { return nil }))
	down := NewMetricsHandler(nil, pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))

	rec, _ := serve(t, "/ready", func(r *gin.Engine) { r.GET("/ready", ok.Ready) })
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, "/ready", func(r *gin.Engine) { r.GET("/ready", down.Ready) })
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "refused")
}

func TestMetricsHandlerSummaryAndPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	h := NewMetricsHandler(metrics, nil)

	rec, env := serve(t, "/metrics/summary", func(r *gin.Engine) { r.GET("/metrics/summary", h.Summary) })
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "goroutines")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", h.Prometheus)
	prom := httptest.NewRecorder()
	r.ServeHTTP(prom, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, prom.Code)
	assert.Contains(t, prom.Body.String(), "goroutines_total")
}
