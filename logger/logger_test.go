package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	verbose, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error = %v", err)
	}
	if !verbose.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should enable debug")
	}

	quiet, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error = %v", err)
	}
	if quiet.Core().Enabled(zapcore.DebugLevel) {
		t.Error("production logger should not enable debug")
	}
	if !quiet.Core().Enabled(zapcore.InfoLevel) {
		t.Error("production logger should enable info")
	}
}
