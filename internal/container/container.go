// Package container reports the execution context of the process by reading a
// marker file that container images write their name into.
package container

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// DefaultMarkerPath is the file container images use to publish their name.
const DefaultMarkerPath = "/etc/container-name"

// HostLabel is reported when the marker file does not exist.
const HostLabel = "host"

// Detector resolves the container label from a marker file.
type Detector struct {
	path   string
	logger *zap.Logger
}

// Option configures Detector behaviour.
type Option func(*Detector)

// WithMarkerPath overrides the marker file location, primarily for tests.
func WithMarkerPath(path string) Option {
	return func(d *Detector) {
		d.path = path
	}
}

// NewDetector constructs a Detector reading DefaultMarkerPath unless overridden.
func NewDetector(logger *zap.Logger, opts ...Option) *Detector {
	d := &Detector{
		path:   DefaultMarkerPath,
		logger: logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = zap.NewNop()
	}
	return d
}

// Detect returns the trimmed marker contents, HostLabel when the marker is
// missing, or "unknown (<cause>)" for any other read failure.
func (d *Detector) Detect() string {
	data, err := os.ReadFile(d.path)
	switch {
	case err == nil:
		return strings.TrimSpace(string(data))
	case errors.Is(err, fs.ErrNotExist):
		d.logger.Debug("container marker not found", zap.String("path", d.path))
		return HostLabel
	default:
		d.logger.Warn("container marker unreadable", zap.String("path", d.path), zap.Error(err))
		return fmt.Sprintf("unknown (%v)", err)
	}
}
