package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestInfoIncludesComponentAndFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewZerolog(buf, zerolog.InfoLevel)

	log.Info("Shell", "window created", map[string]interface{}{
		"title": "prueba",
	})

	entry := decodeEntry(t, buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Shell", entry["component"])
	assert.Equal(t, "window created", entry["message"])
	assert.Equal(t, "prueba", entry["title"])
}

func TestErrorIncludesError(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewZerolog(buf, zerolog.InfoLevel)

	log.Error("Shell", errors.New("no display"), nil)

	entry := decodeEntry(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "no display", entry["error"])
}

func TestDebugSuppressedBelowLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewZerolog(buf, zerolog.InfoLevel)

	log.Debug("Shell", "hidden", nil)

	assert.Empty(t, buf.Bytes())
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		debug    string
		want     zerolog.Level
	}{
		{"explicit debug", "debug", "", zerolog.DebugLevel},
		{"explicit warn", "warn", "", zerolog.WarnLevel},
		{"explicit error", "error", "", zerolog.ErrorLevel},
		{"debug flag", "", "1", zerolog.DebugLevel},
		{"default", "", "", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)
			t.Setenv("DEBUG", tt.debug)
			assert.Equal(t, tt.want, LevelFromEnv())
		})
	}
}
