package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestZerologAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, DebugLevel).WithComponent("loader")

	log.Error("load failed", errors.New("boom"), map[string]interface{}{"path": "/tmp/a.csv"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "/tmp/a.csv", entry["path"])
	assert.Equal(t, "load failed", entry["message"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, WarnLevel)

	log.Debug("hidden", nil)
	log.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}
