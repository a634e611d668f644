// Package log provides the logging facade used across the module. It wraps
// a zap.SugaredLogger behind a package-level singleton so callers can log
// without threading a logger instance through every function signature.
package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// EnvironmentDevelopment renders logs with zap's human readable console encoder.
	EnvironmentDevelopment = "development"
	// EnvironmentProduction renders logs as JSON.
	EnvironmentProduction = "production"
)

// Config configures the package-level logger.
type Config struct {
	// Environment selects the encoder: "development" or "production".
	Environment string `mapstructure:"Environment"`
	// Level is one of debug, info, warn, error, fatal.
	Level string `mapstructure:"Level"`
	// Outputs is the list of sinks, e.g. ["stdout"] or a file path.
	Outputs []string `mapstructure:"Outputs"`
}

var (
	mu     sync.Mutex
	logger *zap.SugaredLogger
)

func init() {
	logger = mustBuild(Config{Environment: EnvironmentDevelopment, Level: "info", Outputs: []string{"stdout"}})
}

// Init (re)configures the package-level logger. The swap is guarded by the
// same mutex the logging calls take, so it may run alongside them.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	logger = mustBuild(cfg)
}

func mustBuild(cfg Config) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		_ = level.UnmarshalText([]byte(cfg.Level))
	}
	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      cfg.Environment == EnvironmentDevelopment,
		Encoding:         "json",
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	if cfg.Environment == EnvironmentDevelopment {
		zapCfg.Encoding = "console"
		zapCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// fall back to a no-frills logger rather than panic on a bad config
		l = zap.NewExample()
	}
	return l.Sugar()
}

func current() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

func Debug(args ...interface{})            { current().Debug(args...) }
func Debugf(format string, args ...interface{}) { current().Debugf(format, args...) }
func Info(args ...interface{})             { current().Info(args...) }
func Infof(format string, args ...interface{})  { current().Infof(format, args...) }
func Warn(args ...interface{})             { current().Warn(args...) }
func Warnf(format string, args ...interface{})  { current().Warnf(format, args...) }
func Error(args ...interface{})            { current().Error(args...) }
func Errorf(format string, args ...interface{}) { current().Errorf(format, args...) }
func Fatal(args ...interface{})            { current().Fatal(args...) }
func Fatalf(format string, args ...interface{}) { current().Fatalf(format, args...) }

// Sync flushes any buffered log entries.
func Sync() error { return current().Sync() }

// Wrapf is a small helper mirroring the module's fmt.Errorf("...: %w", err)
// wrapping convention while also emitting an error-level log line.
func Wrapf(err error, format string, args ...interface{}) error {
	wrapped := fmt.Errorf(format+": %w", append(args, err)...)
	Error(wrapped)
	return wrapped
}
