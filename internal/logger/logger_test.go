package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(slog.LevelInfo, FormatJSON, &buf)

	log.Debug("hidden")
	log.Info("registration saved", "event_id", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registration saved", entry["msg"])
	assert.EqualValues(t, 3, entry["event_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := New(ParseLevel("debug"), FormatText, &buf)

	log.Debug("tab opened", "tab", "abc")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "tab=abc")
}
