package app

import (
	"bytes"
	"testing"

	"dataplot/internal/commands"
	"dataplot/internal/config"
	"dataplot/internal/logger"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func newTestApplication(t *testing.T, demo bool) (*Application, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	cfg := &config.Config{
		LogLevel:     logger.DebugLevel,
		WorkDir:      t.TempDir(),
		Demo:         demo,
		WindowWidth:  800,
		WindowHeight: 600,
	}
	a := NewApplication(test.NewTempApp(t), cfg, logger.NewZerolog(&buf, logger.DebugLevel))
	return a, &buf
}

func TestNewApplicationWithDemo(t *testing.T) {
	a, _ := newTestApplication(t, true)

	assert.Equal(t, []string{"Sin Plot", "Random Number Plot", "XY"}, a.View().Tabs().Labels())
	assert.Equal(t, "Data plot v0.0.1", a.window.Title())
}

func TestNewApplicationStartsEmpty(t *testing.T) {
	a, _ := newTestApplication(t, false)

	assert.Equal(t, 0, a.View().TabCount())
	assert.Equal(t, "Please select a CSV to load", a.View().StatusBar().GetStatus())
}

func TestExitShutsDownOnce(t *testing.T) {
	a, buf := newTestApplication(t, false)

	a.Controller().Dispatch(commands.Exit)
	a.Shutdown()

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("shutdown sequence initiated")))
	assert.Contains(t, buf.String(), "controller shutdown")
}
