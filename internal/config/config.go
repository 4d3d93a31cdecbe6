// Package config reads runtime settings from PYBUILDER_* environment variables.
package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"pyinstaller-builder/internal/command"
	"pyinstaller-builder/internal/imports"
	"pyinstaller-builder/internal/logger"
)

const EnvPrefix = "PYBUILDER"

const (
	KeyTool         = "tool"
	KeyLogLevel     = "log_level"
	KeyJSONLogs     = "json_logs"
	KeyDistDir      = "dist_dir"
	KeyScanTimeout  = "scan_timeout"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyWindowIcon   = "window_icon"
)

// DefaultWindowIcon is looked up in the working directory at startup
const DefaultWindowIcon = "app_icon.ico"

type Config struct {
	Tool         string
	LogLevel     logger.LogLevel
	JSONLogs     bool
	DistDir      string
	ScanTimeout  time.Duration
	WindowWidth  float32
	WindowHeight float32
	WindowIcon   string
}

// New returns a viper instance bound to the environment with defaults set.
// Callers may bind CLI flags onto it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyTool, command.DefaultTool)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyJSONLogs, false)
	v.SetDefault(KeyDistDir, "dist")
	v.SetDefault(KeyScanTimeout, imports.DefaultTimeout)
	v.SetDefault(KeyWindowWidth, 750)
	v.SetDefault(KeyWindowHeight, 730)
	v.SetDefault(KeyWindowIcon, DefaultWindowIcon)
	return v
}

// Load resolves the configuration; DistDir is made absolute.
func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = New()
	}

	cfg := &Config{
		Tool:         strings.TrimSpace(v.GetString(KeyTool)),
		LogLevel:     logger.ParseLevel(v.GetString(KeyLogLevel)),
		JSONLogs:     v.GetBool(KeyJSONLogs),
		ScanTimeout:  v.GetDuration(KeyScanTimeout),
		WindowWidth:  float32(v.GetFloat64(KeyWindowWidth)),
		WindowHeight: float32(v.GetFloat64(KeyWindowHeight)),
		WindowIcon:   strings.TrimSpace(v.GetString(KeyWindowIcon)),
	}

	if cfg.Tool == "" {
		return nil, errors.New("packaging tool name must not be empty")
	}
	if cfg.ScanTimeout <= 0 {
		return nil, errors.Errorf("scan timeout must be positive, got %s", cfg.ScanTimeout)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return nil, errors.Errorf("invalid window size %.0fx%.0f", cfg.WindowWidth, cfg.WindowHeight)
	}

	if dist := strings.TrimSpace(v.GetString(KeyDistDir)); dist != "" {
		abs, err := filepath.Abs(dist)
		if err != nil {
			return nil, errors.Wrap(err, "resolve dist directory")
		}
		cfg.DistDir = abs
	}

	return cfg, nil
}
