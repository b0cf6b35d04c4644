package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func setupTestMeter(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	return mp, reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestHTTPMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mp, reader := setupTestMeter(t)

	r := gin.New()
	r.Use(HTTPMetrics(mp.Meter("test"), nil))
	r.GET("/api/v1/campaigns/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/api/v1/campaigns/a", "/api/v1/campaigns/b", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	total, ok := findMetric(rm, "http_server_request_total")
	require.True(t, ok)
	byRoute := map[string]int64{}
	for _, dp := range total.Data.(metricdata.Sum[int64]).DataPoints {
		route, _ := dp.Attributes.Value(attrHTTPRoute)
		byRoute[route.AsString()] += dp.Value
	}
	assert.Equal(t, map[string]int64{"/api/v1/campaigns/:id": 2, "unmatched": 1}, byRoute)

	duration, ok := findMetric(rm, "http_server_request_duration_seconds")
	require.True(t, ok)
	assert.Len(t, duration.Data.(metricdata.Histogram[float64]).DataPoints, 2)

	active, ok := findMetric(rm, "http_server_active_requests")
	require.True(t, ok)
	for _, dp := range active.Data.(metricdata.Sum[int64]).DataPoints {
		assert.Equal(t, int64(0), dp.Value)
	}
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPMetrics(nil, nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
