// Package config resolves the application settings from command line flags.
package config

import (
	"fmt"
	"os"

	"dataplot/internal/logger"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyServer   = "server"
	KeyLogLevel = "log-level"
	KeyWorkDir  = "workdir"
	KeyDemo     = "demo"
	KeyWidth    = "width"
	KeyHeight   = "height"
)

type Config struct {
	Server       bool
	LogLevel     logger.LogLevel
	WorkDir      string
	Demo         bool
	WindowWidth  float32
	WindowHeight float32
}

// RegisterFlags adds the application flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP(KeyServer, "s", false, "run dataplot in server mode")
	fs.String(KeyLogLevel, "debug", "log level: debug, info, warn or error")
	fs.String(KeyWorkDir, "", "directory file dialogs start in (default: current directory)")
	fs.Bool(KeyDemo, false, "open the sample plots on start-up")
	fs.Float32(KeyWidth, 1200, "initial window width")
	fs.Float32(KeyHeight, 800, "initial window height")
}

// Load reads the flags registered by RegisterFlags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, err
	}

	workDir := v.GetString(KeyWorkDir)
	if workDir == "" {
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
	}
	info, err := os.Stat(workDir)
	if err != nil {
		return nil, fmt.Errorf("workdir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workdir %s is not a directory", workDir)
	}

	cfg := &Config{
		Server:       v.GetBool(KeyServer),
		LogLevel:     level,
		WorkDir:      workDir,
		Demo:         v.GetBool(KeyDemo),
		WindowWidth:  float32(v.GetFloat64(KeyWidth)),
		WindowHeight: float32(v.GetFloat64(KeyHeight)),
	}
	if cfg.WindowWidth < 400 || cfg.WindowHeight < 300 {
		return nil, fmt.Errorf("window size %.0fx%.0f is below the 400x300 minimum", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}
