package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/envinfo/internal/config"
	"github.com/eugenenazirov/envinfo/internal/container"
	"github.com/eugenenazirov/envinfo/internal/report"
)

// App encapsulates the environment snapshot and output dependencies.
type App struct {
	env      config.Env
	out      io.Writer
	logger   *zap.Logger
	detector *container.Detector
}

// AppOption configures App behaviour.
type AppOption func(*App)

// WithDetector overrides the container detector, primarily for tests.
func WithDetector(d *container.Detector) AppOption {
	return func(a *App) {
		a.detector = d
	}
}

// New initializes the application over the provided snapshot.
func New(env config.Env, out io.Writer, logger *zap.Logger, opts ...AppOption) *App {
	a := &App{
		env:    env,
		out:    out,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.detector == nil {
		a.detector = container.NewDetector(logger)
	}
	return a
}

// ShowConfig resolves the configuration and prints the summary. Coercion
// warnings are logged and do not fail the run. A missing required variable is
// printed and returned so the caller can exit non-zero.
func (a *App) ShowConfig() error {
	if err := report.Intro(a.out); err != nil {
		return fmt.Errorf("write intro: %w", err)
	}
	if err := report.ConfigHeader(a.out); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	cfg, warnings, err := config.Resolve(a.env)
	if err != nil {
		if printErr := report.ConfigError(a.out, err); printErr != nil {
			a.logger.Error("failed to print configuration error", zap.Error(printErr))
		}
		return err
	}

	for _, w := range warnings {
		a.logger.Warn(w.String(),
			zap.String("key", w.Key),
			zap.String("value", w.Value),
			zap.Int("default", w.Default),
		)
	}

	a.logger.Debug("configuration resolved",
		zap.String("app_name", cfg.AppName),
		zap.String("app_env", cfg.AppEnv),
		zap.Int("app_port", cfg.AppPort),
	)

	if err := report.ConfigBody(a.out, cfg); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	if err := report.Status(a.out, cfg, a.env); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

// Inspect prints the execution context followed by the full environment dump.
func (a *App) Inspect() error {
	label := a.detector.Detect()
	a.logger.Debug("execution context detected", zap.String("label", label))

	if err := report.Context(a.out, label); err != nil {
		return fmt.Errorf("write context: %w", err)
	}
	if err := report.Dump(a.out, a.env); err != nil {
		return fmt.Errorf("write environment: %w", err)
	}
	return nil
}
