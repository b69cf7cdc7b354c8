package telemetry

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/grafana/pyroscope-go"
	"go.uber.org/zap"
)

// ProfilerConfig holds Pyroscope continuous profiling configuration.
type ProfilerConfig struct {
	Enabled         bool
	ServerAddress   string
	ApplicationName string
	UploadRate      time.Duration
}

// DefaultProfileTypes leaves out mutex and block profiles, which need
// runtime sampling rates set first.
var DefaultProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// Profiler is the running Pyroscope agent, or nothing when profiling is off.
type Profiler struct {
	agent *pyroscope.Profiler
	log   *zap.Logger
	stop  sync.Once
}

func (cfg ProfilerConfig) check() error {
	var errs []error
	if cfg.ServerAddress == "" {
		errs = append(errs, errors.New("profiler server address is required"))
	}
	if cfg.ApplicationName == "" {
		errs = append(errs, errors.New("profiler application name is required"))
	}
	return errors.Join(errs...)
}

// NewProfiler starts pushing profiles to cfg.ServerAddress.
func NewProfiler(cfg ProfilerConfig, log *zap.Logger) (*Profiler, error) {
	p := &Profiler{log: log}
	if !cfg.Enabled {
		log.Info("Continuous profiling off")
		return p, nil
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}

	tags := map[string]string{}
	if host, err := os.Hostname(); err == nil && host != "" {
		tags["hostname"] = host
	}

	agent, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.ApplicationName,
		ServerAddress:   cfg.ServerAddress,
		UploadRate:      cfg.UploadRate,
		ProfileTypes:    DefaultProfileTypes,
		Tags:            tags,
		Logger:          pyroscopeLogger{log.Named("pyroscope").Sugar()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Pyroscope profiler: %w", err)
	}
	p.agent = agent

	log.Info("Continuous profiling on",
		zap.String("server_address", cfg.ServerAddress),
		zap.String("application_name", cfg.ApplicationName),
	)
	return p, nil
}

// IsEnabled reports whether the agent is running
func (p *Profiler) IsEnabled() bool {
	return p.agent != nil
}

// Stop uploads the last profiles. Only the first call does anything.
func (p *Profiler) Stop() error {
	var err error
	p.stop.Do(func() {
		if p.agent == nil {
			return
		}
		if err = p.agent.Stop(); err != nil {
			err = fmt.Errorf("failed to stop profiler: %w", err)
			return
		}
		p.log.Info("Continuous profiling stopped")
	})
	return err
}

// pyroscopeLogger satisfies pyroscope.Logger with a sugared zap logger
type pyroscopeLogger struct {
	*zap.SugaredLogger
}
