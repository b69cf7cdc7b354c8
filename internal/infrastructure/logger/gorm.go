package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormConfig tunes what the gorm adapter writes
type GormConfig struct {
	Level         gormlogger.LogLevel
	SlowThreshold time.Duration // 0 turns slow query warnings off
	// LogSQL adds the rendered statement, bound values included
	LogSQL      bool
	LogNotFound bool
}

// GormConfigFor derives the gorm settings from the application log level:
// debug and info log every statement, error only failures, silent nothing.
func GormConfigFor(appLevel string) GormConfig {
	cfg := GormConfig{Level: gormlogger.Warn, SlowThreshold: 200 * time.Millisecond}
	switch strings.ToLower(appLevel) {
	case "silent":
		cfg.Level = gormlogger.Silent
	case "error":
		cfg.Level = gormlogger.Error
	case "info", "debug":
		cfg.Level = gormlogger.Info
	}
	return cfg
}

// GormLogger writes gorm's statements and messages through zap with the
// request id and trace id of ctx
type GormLogger struct {
	log *zap.Logger
	cfg GormConfig
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates the adapter under a "gorm" child logger
func NewGormLogger(base *zap.Logger, cfg GormConfig) *GormLogger {
	return &GormLogger{log: base.Named("gorm"), cfg: cfg}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cfg := l.cfg
	cfg.Level = level
	return &GormLogger{log: l.log, cfg: cfg}
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Info, msg, data)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Warn, msg, data)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.printf(ctx, gormlogger.Error, msg, data)
}

func (l *GormLogger) printf(ctx context.Context, level gormlogger.LogLevel, msg string, data []any) {
	if l.cfg.Level < level {
		return
	}
	s := WithTraceContext(ctx, l.log).Sugar()
	switch level {
	case gormlogger.Error:
		s.Errorf(msg, data...)
	case gormlogger.Warn:
		s.Warnf(msg, data...)
	default:
		s.Infof(msg, data...)
	}
}

// Trace logs one executed statement: failures at error, slow ones at warn,
// the rest at debug.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.cfg.Level == gormlogger.Silent {
		return
	}
	if err != nil && !l.cfg.LogNotFound && errors.Is(err, gormlogger.ErrRecordNotFound) {
		return
	}

	elapsed := time.Since(begin)
	slow := l.cfg.SlowThreshold > 0 && elapsed > l.cfg.SlowThreshold

	var msg string
	var write func(string, ...zap.Field)
	log := WithTraceContext(ctx, l.log)
	switch {
	case err != nil && l.cfg.Level >= gormlogger.Error:
		msg, write = "SQL Error", log.Error
	case slow && l.cfg.Level >= gormlogger.Warn:
		msg, write = "SLOW SQL >= "+l.cfg.SlowThreshold.String(), log.Warn
	case l.cfg.Level >= gormlogger.Info:
		msg, write = "SQL Query", log.Debug
	default:
		return
	}

	sql, rows := fc()
	fields := []zap.Field{zap.Duration("elapsed", elapsed), zap.Int64("rows", rows)}
	if l.cfg.LogSQL {
		fields = append(fields, zap.String("sql", sql))
	}
	if id := GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	write(msg, fields...)
}
