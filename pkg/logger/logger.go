package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration
type Config struct {
	Level       string // debug, info, warn, error
	ServiceName string
	Development bool
}

// Logger wraps zap.Logger with service-scoped fields
type Logger struct {
	*zap.Logger
}

var global *Logger

// Init initializes the global logger
func Init(cfg *Config) error {
	log, err := New(cfg)
	if err != nil {
		return err
	}
	global = log
	return nil
}

// New creates a logger without touching the global instance
func New(cfg *Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.Set(cfg.Level); err != nil {
			// Environment names like "development" are accepted in place of a
			// level so callers can reuse APP_ENVIRONMENT directly.
			if cfg.Level == "development" {
				level = zapcore.DebugLevel
			} else {
				level = zapcore.InfoLevel
			}
		}
	}

	var zapCfg zap.Config
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zapCfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.ServiceName != "" {
		log = log.With(zap.String("service", cfg.ServiceName))
	}

	return &Logger{Logger: log}, nil
}

// Get returns the global logger, falling back to a no-op logger so callers
// never have to nil-check
func Get() *Logger {
	if global == nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return global
}

// Sync flushes buffered log entries
func Sync() {
	if global != nil {
		_ = global.Logger.Sync()
	}
}
