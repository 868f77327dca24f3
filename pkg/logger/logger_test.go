package logger

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_WritesRotatedFiles(t *testing.T) {
	dir := t.TempDir()
	log := New(Config{App: "wheel", Level: "debug", Dir: dir, File: true})

	log.Info("spin started")
	log.Error("reveal failed")
	_ = log.Sync()

	for _, name := range []string{"wheel.log", "wheel_error.log"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New(Config{Level: "loud"})
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Error("debug must be disabled after fallback to info")
	}
	if !log.Core().Enabled(zapcore.InfoLevel) {
		t.Error("info must be enabled after fallback")
	}
}
