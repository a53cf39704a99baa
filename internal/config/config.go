// Package config loads clipdeck settings from environment variables with
// sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	// Default values
	DefaultLogLevel    = "info"
	DefaultLogFileName = "clipdeck.log"
	DefaultClipSeconds = 10

	// Bounds for CLIPDECK_CLIP_SECONDS
	MinClipSeconds = 1
	MaxClipSeconds = 3600

	// Environment variable names
	EnvLogLevel    = "CLIPDECK_LOG_LEVEL"
	EnvLogFile     = "CLIPDECK_LOG_FILE"
	EnvClipSeconds = "CLIPDECK_CLIP_SECONDS"
	EnvFFProbe     = "CLIPDECK_FFPROBE"
)

// Config defines the application configuration interface
type Config interface {
	LogLevel() string
	LogFile() string
	DefaultClipDuration() time.Duration
	ProbeEnabled() bool
}

var _ Config = (*EnvConfig)(nil)

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	logLevel     string
	logFile      string
	clipSeconds  int
	probeEnabled bool
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		logLevel:     DefaultLogLevel,
		logFile:      filepath.Join(os.TempDir(), DefaultLogFileName),
		clipSeconds:  DefaultClipSeconds,
		probeEnabled: true,
	}

	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	if lf := os.Getenv(EnvLogFile); lf != "" {
		cfg.logFile = lf
	}

	if cs := os.Getenv(EnvClipSeconds); cs != "" {
		secs, err := strconv.Atoi(cs)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvClipSeconds, err)
		}
		if secs < MinClipSeconds || secs > MaxClipSeconds {
			return nil, fmt.Errorf("invalid %s: must be between %d and %d", EnvClipSeconds, MinClipSeconds, MaxClipSeconds)
		}
		cfg.clipSeconds = secs
	}

	if fp := os.Getenv(EnvFFProbe); fp != "" {
		enabled, err := strconv.ParseBool(fp)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvFFProbe, err)
		}
		cfg.probeEnabled = enabled
	}

	return cfg, nil
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// LogFile returns the path logs are appended to. The terminal belongs to the UI.
func (c *EnvConfig) LogFile() string {
	return c.logFile
}

// DefaultClipDuration returns the length given to synthetic clips
func (c *EnvConfig) DefaultClipDuration() time.Duration {
	return time.Duration(c.clipSeconds) * time.Second
}

// ProbeEnabled reports whether imported files are inspected with ffprobe
func (c *EnvConfig) ProbeEnabled() bool {
	return c.probeEnabled
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)
