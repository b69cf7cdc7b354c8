package middleware

import (
	"time"

	"github.com/fridgetofork/pantry-admin/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// UnmatchedRoute labels requests that matched no route
const UnmatchedRoute = "unmatched"

// HTTPMetricsConfig holds configuration for HTTP metrics middleware.
type HTTPMetricsConfig struct {
	MeterProvider *telemetry.MeterProvider
	Logger        *zap.Logger
	Enabled       bool
}

// HTTPMetrics records request count, latency, response size and in-flight
// requests per route template. With metrics off it only calls c.Next.
func HTTPMetrics(cfg HTTPMetricsConfig) gin.HandlerFunc {
	if !cfg.Enabled || !cfg.MeterProvider.IsEnabled() {
		return passThrough
	}

	sm, err := telemetry.NewServerMetrics(cfg.MeterProvider.Meter("http.server"))
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("HTTP metrics disabled", zap.Error(err))
		}
		return passThrough
	}
	return observe(sm)
}

// HTTPMetricsWithMeter is HTTPMetrics on an explicit meter
func HTTPMetricsWithMeter(meter metric.Meter) gin.HandlerFunc {
	sm, err := telemetry.NewServerMetrics(meter)
	if err != nil {
		return passThrough
	}
	return observe(sm)
}

func passThrough(c *gin.Context) {
	c.Next()
}

func observe(sm *telemetry.ServerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		start := time.Now()

		done := sm.Begin(ctx)
		c.Next()
		done()

		sm.Observe(ctx, c.Request.Method, routePattern(c), c.Writer.Status(), time.Since(start), c.Writer.Size())
	}
}

// routePattern is the matched template such as "/api/v1/recipes/:id", which
// keeps path ids out of label values
func routePattern(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return UnmatchedRoute
}
