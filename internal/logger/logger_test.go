package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerDebugWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"theme": "Dark", "source": "flag"})
	log.Debug("factory selected")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "factory selected", entry["message"])
	require.Equal(t, "Dark", entry["theme"])
	require.Equal(t, "flag", entry["source"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerDefaultLevelIsQuiet(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("also hidden")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "error", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("broken pipe"), "write failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "write failed", entry["message"])
	require.Equal(t, "broken pipe", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.NotPanics(t, func() {
		nilLog.Info("ignored")
		nilLog.Error(errors.New("x"), "ignored")
		require.Nil(t, nilLog.WithFields(map[string]any{"k": "v"}))
	})

	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"k": "v"}).Warn("ignored")
	})
}
