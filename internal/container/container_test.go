package container

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestDetectMissingMarkerIsHost(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "container-name")
	d := NewDetector(zaptest.NewLogger(t), WithMarkerPath(path))

	if got := d.Detect(); got != HostLabel {
		t.Fatalf("expected %q, got %q", HostLabel, got)
	}
}

func TestDetectTrimsMarkerContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "container-name")
	if err := os.WriteFile(path, []byte("dev-container\n"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	d := NewDetector(zaptest.NewLogger(t), WithMarkerPath(path))
	if got := d.Detect(); got != "dev-container" {
		t.Fatalf("expected trimmed label, got %q", got)
	}
}

func TestDetectUnreadableMarkerIsUnknown(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	// A directory exists but cannot be read as a file.
	d := NewDetector(zap.New(core), WithMarkerPath(t.TempDir()))

	got := d.Detect()
	if !strings.HasPrefix(got, "unknown (") || !strings.HasSuffix(got, ")") {
		t.Fatalf("expected unknown label, got %q", got)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
}

func TestNewDetectorDefaults(t *testing.T) {
	t.Parallel()

	d := NewDetector(nil)
	if d.path != DefaultMarkerPath {
		t.Fatalf("expected default marker path, got %s", d.path)
	}
	if d.logger == nil {
		t.Fatalf("expected no-op logger when none is provided")
	}
}
