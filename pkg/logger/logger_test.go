package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_EmitsJSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("fixture-generator", "info", &buf)

	log.Info("catalog generated", "rows", 50)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fixture-generator", entry["service"])
	assert.Equal(t, "catalog generated", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 50, entry["rows"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("fixture-generator", "warn", &buf)

	log.Info("should be suppressed")
	assert.Zero(t, buf.Len())

	log.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("fixture-generator", "verbose", &buf)

	log.Debug("suppressed at info")
	assert.Zero(t, buf.Len())

	log.Info("visible at info")
	assert.Contains(t, buf.String(), "visible at info")
}
