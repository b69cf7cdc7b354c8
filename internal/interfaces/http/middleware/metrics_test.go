package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func setupTestMeter(t *testing.T) (*telemetry.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := telemetry.NewMeterProviderWithReader(reader, zap.NewNop())
	t.Cleanup(func() {
		_ = mp.Shutdown(context.Background())
	})
	return mp, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetricByName(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func metricsRouter(mw gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(mw)
	router.GET("/api/v1/recipes/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	router.DELETE("/api/v1/recipes/:id", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return router
}

func serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHTTPMetrics_DisabledIsPassThrough(t *testing.T) {
	mp, reader := setupTestMeter(t)

	router := metricsRouter(HTTPMetrics(HTTPMetricsConfig{MeterProvider: mp, Enabled: false}))
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/recipes/1").Code)

	assert.Nil(t, findMetricByName(collectMetrics(t, reader), "http_server_request_total"))
}

func TestHTTPMetrics_NilMeterProvider(t *testing.T) {
	router := metricsRouter(HTTPMetrics(HTTPMetricsConfig{Enabled: true}))
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/recipes/1").Code)
}

func TestHTTPMetrics_RequestCounter(t *testing.T) {
	mp, reader := setupTestMeter(t)
	router := metricsRouter(HTTPMetrics(HTTPMetricsConfig{MeterProvider: mp, Logger: zap.NewNop(), Enabled: true}))

	serve(router, http.MethodGet, "/api/v1/recipes/1")
	serve(router, http.MethodGet, "/api/v1/recipes/2")
	serve(router, http.MethodDelete, "/api/v1/recipes/3")

	m := findMetricByName(collectMetrics(t, reader), "http_server_request_total")
	require.NotNil(t, m)

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 2)

	counts := map[string]int64{}
	for _, dp := range sum.DataPoints {
		method, _ := dp.Attributes.Value(telemetry.AttrHTTPMethod)
		route, _ := dp.Attributes.Value(telemetry.AttrHTTPRoute)
		status, _ := dp.Attributes.Value(telemetry.AttrHTTPStatusCode)
		assert.Equal(t, "/api/v1/recipes/:id", route.AsString())
		if method.AsString() == http.MethodDelete {
			assert.Equal(t, int64(http.StatusNotFound), status.AsInt64())
		}
		counts[method.AsString()] = dp.Value
	}
	assert.Equal(t, int64(2), counts[http.MethodGet])
	assert.Equal(t, int64(1), counts[http.MethodDelete])
}

func TestHTTPMetricsWithMeter_DurationAndSize(t *testing.T) {
	mp, reader := setupTestMeter(t)
	router := metricsRouter(HTTPMetricsWithMeter(mp.Meter("http.server")))

	serve(router, http.MethodGet, "/api/v1/recipes/1")
	rm := collectMetrics(t, reader)

	duration := findMetricByName(rm, "http_server_request_duration_seconds")
	require.NotNil(t, duration)
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(1), hist.DataPoints[0].Count)

	size := findMetricByName(rm, "http_server_response_size_bytes")
	require.NotNil(t, size)

	active := findMetricByName(rm, "http_server_active_requests")
	require.NotNil(t, active)
	gauge, ok := active.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(0), gauge.DataPoints[0].Value)
}

func TestRoutePattern_Unmatched(t *testing.T) {
	router := gin.New()
	var route string
	router.NoRoute(func(c *gin.Context) {
		route = routePattern(c)
		c.Status(http.StatusNotFound)
	})

	serve(router, http.MethodGet, "/nowhere/123")
	assert.Equal(t, UnmatchedRoute, route)
}
