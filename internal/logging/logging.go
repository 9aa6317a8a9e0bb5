package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	debug       bool
	encoding    string
	outputPaths []string
}

// Option configures the logger built by New.
type Option func(*options)

// WithDebug lowers the level to debug.
func WithDebug(enabled bool) Option {
	return func(o *options) {
		o.debug = enabled
	}
}

// WithEncoding selects the zap encoding ("json" or "console").
func WithEncoding(encoding string) Option {
	return func(o *options) {
		o.encoding = encoding
	}
}

// WithOutputPaths overrides where log entries are written.
func WithOutputPaths(paths ...string) Option {
	return func(o *options) {
		o.outputPaths = paths
	}
}

// New creates a structured logger writing to stderr, so diagnostics never mix
// with the report printed on stdout. JSON encoding is used unless overridden.
func New(opts ...Option) (*zap.Logger, error) {
	o := options{
		encoding:    "json",
		outputPaths: []string{"stderr"},
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = o.encoding
	cfg.OutputPaths = o.outputPaths
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.StacktraceKey = "stacktrace"
	cfg.DisableStacktrace = true
	if o.encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if o.debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
