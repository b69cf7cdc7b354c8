package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogsConfig holds OTLP log export configuration.
type LogsConfig struct {
	Collector
	Enabled bool
}

// LoggerProvider ships zap entries to the collector through the otelzap bridge.
type LoggerProvider struct {
	sdk     *sdklog.LoggerProvider
	service string
}

// NewLoggerProvider batches log records over OTLP/gRPC and installs the
// provider globally.
func NewLoggerProvider(ctx context.Context, cfg LogsConfig, log *zap.Logger) (*LoggerProvider, error) {
	if !cfg.Enabled {
		log.Info("Log export off")
		return &LoggerProvider{service: cfg.ServiceName}, nil
	}

	opts := []otlploggrpc.Option{otlploggrpc.WithEndpoint(cfg.Endpoint)}
	if cfg.Insecure {
		opts = append(opts, otlploggrpc.WithInsecure())
	}
	exporter, err := otlploggrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP logs exporter: %w", err)
	}

	res, err := cfg.resource()
	if err != nil {
		return nil, err
	}

	lp := NewLoggerProviderWithProcessor(sdklog.NewBatchProcessor(exporter), cfg.ServiceName, sdklog.WithResource(res))
	global.SetLoggerProvider(lp.sdk)

	log.Info("Log export on", zap.String("collector_endpoint", cfg.Endpoint))
	return lp, nil
}

// NewLoggerProviderWithProcessor is an exporting provider around processor.
// It is not installed globally.
func NewLoggerProviderWithProcessor(processor sdklog.Processor, serviceName string, opts ...sdklog.LoggerProviderOption) *LoggerProvider {
	opts = append(opts, sdklog.WithProcessor(processor))
	return &LoggerProvider{sdk: sdklog.NewLoggerProvider(opts...), service: serviceName}
}

// IsEnabled reports whether log records are exported
func (lp *LoggerProvider) IsEnabled() bool {
	return lp.sdk != nil
}

// Shutdown exports the records still queued
func (lp *LoggerProvider) Shutdown(ctx context.Context) error {
	if lp.sdk == nil {
		return nil
	}
	return flush(ctx, "logger", lp.sdk.Shutdown)
}

// ZapCore is a core that forwards entries at minLevel and above. The caller
// tees it with the console core.
func (lp *LoggerProvider) ZapCore(minLevel zapcore.Level) zapcore.Core {
	if lp.sdk == nil {
		return zapcore.NewNopCore()
	}
	bridge := otelzap.NewCore(lp.service, otelzap.WithLoggerProvider(lp.sdk))
	return minLevelCore{Core: bridge, min: minLevel}
}

// minLevelCore puts a level floor on the bridge, which accepts every level
type minLevelCore struct {
	zapcore.Core
	min zapcore.Level
}

func (c minLevelCore) Enabled(lvl zapcore.Level) bool {
	return lvl >= c.min && c.Core.Enabled(lvl)
}

func (c minLevelCore) With(fields []zapcore.Field) zapcore.Core {
	return minLevelCore{Core: c.Core.With(fields), min: c.min}
}

func (c minLevelCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if e.Level < c.min {
		return ce
	}
	return c.Core.Check(e, ce)
}
