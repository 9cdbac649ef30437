package config

import (
	"os"
	"path/filepath"
	"testing"

	"dataplot/internal/logger"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("dataplot", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return Load(fs)
}

func TestDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.WorkDir)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.False(t, cfg.Server)
	assert.False(t, cfg.Demo)
	assert.Equal(t, float32(1200), cfg.WindowWidth)
}

func TestFlags(t *testing.T) {
	dir := t.TempDir()
	cfg, err := parse(t, "-s", "--log-level=warn", "--workdir", dir, "--demo", "--width=640", "--height=480")
	require.NoError(t, err)

	assert.True(t, cfg.Server)
	assert.True(t, cfg.Demo)
	assert.Equal(t, logger.WarnLevel, cfg.LogLevel)
	assert.Equal(t, dir, cfg.WorkDir)
	assert.Equal(t, float32(480), cfg.WindowHeight)
}

func TestInvalidValues(t *testing.T) {
	_, err := parse(t, "--log-level=loud")
	assert.Error(t, err)

	_, err = parse(t, "--workdir", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.csv")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = parse(t, "--workdir", file)
	assert.Error(t, err)

	_, err = parse(t, "--width=10")
	assert.Error(t, err)
}
