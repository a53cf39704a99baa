package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")
	t.Setenv(EnvClipSeconds, "")
	t.Setenv(EnvFFProbe, "")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel() != "info" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "info")
	}
	if filepath.Base(cfg.LogFile()) != DefaultLogFileName {
		t.Errorf("LogFile() = %q, want base %q", cfg.LogFile(), DefaultLogFileName)
	}
	if cfg.DefaultClipDuration() != 10*time.Second {
		t.Errorf("DefaultClipDuration() = %s, want 10s", cfg.DefaultClipDuration())
	}
	if !cfg.ProbeEnabled() {
		t.Error("ProbeEnabled() = false, want true")
	}
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/var/log/clipdeck.log")
	t.Setenv(EnvClipSeconds, "30")
	t.Setenv(EnvFFProbe, "false")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel() != "debug" {
		t.Errorf("LogLevel() = %q, want %q", cfg.LogLevel(), "debug")
	}
	if cfg.LogFile() != "/var/log/clipdeck.log" {
		t.Errorf("LogFile() = %q, want %q", cfg.LogFile(), "/var/log/clipdeck.log")
	}
	if cfg.DefaultClipDuration() != 30*time.Second {
		t.Errorf("DefaultClipDuration() = %s, want 30s", cfg.DefaultClipDuration())
	}
	if cfg.ProbeEnabled() {
		t.Error("ProbeEnabled() = true, want false")
	}
}

func TestNew_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "clip seconds not a number", key: EnvClipSeconds, val: "ten"},
		{name: "clip seconds zero", key: EnvClipSeconds, val: "0"},
		{name: "clip seconds too large", key: EnvClipSeconds, val: "3601"},
		{name: "ffprobe not a bool", key: EnvFFProbe, val: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvClipSeconds, "")
			t.Setenv(EnvFFProbe, "")
			t.Setenv(tt.key, tt.val)

			if _, err := New(); err == nil {
				t.Errorf("New() with %s=%q error = nil, want error", tt.key, tt.val)
			}
		})
	}
}
