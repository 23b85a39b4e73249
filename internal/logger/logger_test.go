package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerWritesFieldsAndErrors(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel(zerolog.DebugLevel))
	require.NoError(t, err)

	log.Debug("polling", "desktop", 2, "pid", 4242)
	log.Warn("close window failed", errors.New("exit status 1"), "window_id", "0x01")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "polling", entries[0]["message"])
	assert.EqualValues(t, 2, entries[0]["desktop"])
	assert.EqualValues(t, 4242, entries[0]["pid"])
	assert.Equal(t, "logger_test.go", entries[0]["file"])

	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "exit status 1", entries[1]["error"])
	assert.Equal(t, "0x01", entries[1]["window_id"])
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(WithWriter(&buf), WithLevel(zerolog.InfoLevel))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Warn("shown", nil, "dangling")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["message"])
	assert.NotContains(t, entries[0], "dangling")
}

func TestWithWriterRejectsNil(t *testing.T) {
	_, err := New(WithWriter(nil))
	require.Error(t, err)
	assert.ErrorContains(t, err, "log writer is nil")
}
