package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

const defaultExportInterval = time.Minute

// MetricsConfig selects where and how often metrics are pushed.
type MetricsConfig struct {
	Collector
	Enabled        bool
	ExportInterval time.Duration
}

// MeterProvider owns the SDK provider when metrics are exported. With
// metrics off it hands out no-op meters.
type MeterProvider struct {
	sdk *sdkmetric.MeterProvider
	log *zap.Logger
}

// NewMeterProvider starts a periodic OTLP/gRPC export and installs the
// provider as the global one.
func NewMeterProvider(ctx context.Context, cfg MetricsConfig, log *zap.Logger) (*MeterProvider, error) {
	if !cfg.Enabled {
		log.Info("Metrics export off")
		return &MeterProvider{log: log}, nil
	}

	opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	res, err := cfg.resource()
	if err != nil {
		return nil, err
	}

	interval := cfg.ExportInterval
	if interval <= 0 {
		interval = defaultExportInterval
	}
	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))

	mp := &MeterProvider{
		sdk: sdkmetric.NewMeterProvider(sdkmetric.WithResource(res), sdkmetric.WithReader(reader)),
		log: log,
	}
	otel.SetMeterProvider(mp.sdk)

	log.Info("Metrics export on",
		zap.String("collector_endpoint", cfg.Endpoint),
		zap.Duration("export_interval", interval),
	)
	return mp, nil
}

// NewMeterProviderWithReader is an exporting provider around reader that
// stays out of the global registry. Tests pass a manual reader.
func NewMeterProviderWithReader(reader sdkmetric.Reader, log *zap.Logger) *MeterProvider {
	return &MeterProvider{sdk: sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)), log: log}
}

// IsEnabled reports whether recorded values go anywhere.
func (mp *MeterProvider) IsEnabled() bool {
	return mp != nil && mp.sdk != nil
}

// Meter returns a named meter.
func (mp *MeterProvider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if !mp.IsEnabled() {
		return noop.NewMeterProvider().Meter(name, opts...)
	}
	return mp.sdk.Meter(name, opts...)
}

// Shutdown pushes what is buffered and stops the reader.
func (mp *MeterProvider) Shutdown(ctx context.Context) error {
	if !mp.IsEnabled() {
		return nil
	}
	if err := flush(ctx, "meter", mp.sdk.Shutdown); err != nil {
		return err
	}
	mp.log.Info("Metrics export stopped")
	return nil
}

// Attribute keys of the HTTP server instruments.
var (
	AttrHTTPMethod     = attribute.Key("http.method")
	AttrHTTPStatusCode = attribute.Key("http.status_code")
	AttrHTTPRoute      = attribute.Key("http.route")
)

// HTTPDurationBuckets are latency boundaries in seconds.
var HTTPDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// HTTPSizeBuckets are response size boundaries in bytes.
var HTTPSizeBuckets = []float64{100, 500, 1000, 5000, 10000, 50000, 100000, 500000, 1000000}

// ServerMetrics is the instrument set recorded for every API request.
type ServerMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	size     metric.Float64Histogram
	inFlight metric.Int64UpDownCounter
}

// NewServerMetrics registers the HTTP server instruments on meter.
func NewServerMetrics(meter metric.Meter) (*ServerMetrics, error) {
	var (
		sm  ServerMetrics
		err error
	)
	if sm.requests, err = meter.Int64Counter("http_server_request_total",
		metric.WithDescription("Requests served, by route and status"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create request counter: %w", err)
	}
	if sm.duration, err = meter.Float64Histogram("http_server_request_duration_seconds",
		metric.WithDescription("Request latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(HTTPDurationBuckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}
	if sm.size, err = meter.Float64Histogram("http_server_response_size_bytes",
		metric.WithDescription("Response body size"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(HTTPSizeBuckets...),
	); err != nil {
		return nil, fmt.Errorf("failed to create size histogram: %w", err)
	}
	if sm.inFlight, err = meter.Int64UpDownCounter("http_server_active_requests",
		metric.WithDescription("Requests being served"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create in-flight counter: %w", err)
	}
	return &sm, nil
}

// Begin counts a request as in flight; call the returned func when it ends.
func (sm *ServerMetrics) Begin(ctx context.Context) func() {
	sm.inFlight.Add(ctx, 1)
	return func() { sm.inFlight.Add(ctx, -1) }
}

// Observe records one finished request. Size 0 is not recorded.
func (sm *ServerMetrics) Observe(ctx context.Context, method, route string, status int, elapsed time.Duration, size int) {
	where := metric.WithAttributes(AttrHTTPMethod.String(method), AttrHTTPRoute.String(route))

	sm.requests.Add(ctx, 1, metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatusCode.Int(status),
	))
	sm.duration.Record(ctx, elapsed.Seconds(), where)
	if size > 0 {
		sm.size.Record(ctx, float64(size), where)
	}
}
