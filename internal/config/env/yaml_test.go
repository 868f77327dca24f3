package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestNewWheelConfigFromYAML_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewWheelConfigFromYAML(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpinDuration() != 5*time.Second {
		t.Errorf("expected 5s, got %s", cfg.SpinDuration())
	}
	if cfg.Easing() != defaultEasing {
		t.Errorf("unexpected easing: %s", cfg.Easing())
	}
}

func TestNewWheelConfigFromYAML_Overrides(t *testing.T) {
	path := writeConfig(t, "wheel:\n  spin_duration: 3500ms\n  easing: ease-out\n")

	cfg, err := NewWheelConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpinDuration() != 3500*time.Millisecond {
		t.Errorf("expected 3.5s, got %s", cfg.SpinDuration())
	}
	if cfg.Easing() != "ease-out" {
		t.Errorf("unexpected easing: %s", cfg.Easing())
	}
}

func TestNewWheelConfigFromYAML_InvalidDuration(t *testing.T) {
	for _, raw := range []string{"soon", "0s", "-1s"} {
		path := writeConfig(t, "wheel:\n  spin_duration: "+raw+"\n")
		if _, err := NewWheelConfigFromYAML(path); err == nil {
			t.Errorf("spin_duration=%s: expected error, got nil", raw)
		}
	}
}

func TestNewLoggerConfigFromYAML_EnvOverridesLevel(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: warn\n  dir: /tmp/wheel\n  file: true\n")
	t.Setenv(logLevelEnvName, "debug")

	cfg, err := NewLoggerConfigFromYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Level() != "debug" {
		t.Errorf("expected debug, got %s", cfg.Level())
	}
	if cfg.Dir() != "/tmp/wheel" || !cfg.File() {
		t.Errorf("unexpected file settings: dir=%s file=%v", cfg.Dir(), cfg.File())
	}
}

func TestNewHTTPConfig(t *testing.T) {
	t.Setenv(httpAddrEnvName, "")
	cfg, err := NewHTTPConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Address() != defaultHTTPAddr {
		t.Errorf("expected %s, got %s", defaultHTTPAddr, cfg.Address())
	}

	t.Setenv(httpAddrEnvName, "not-an-address")
	if _, err := NewHTTPConfig(); err == nil {
		t.Error("expected error for invalid address")
	}
}
