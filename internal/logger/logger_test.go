package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "/", "status": 200})
	log.Info("request served")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request served", entry["message"])
	require.Equal(t, "/", entry["path"])
	require.Equal(t, float64(200), entry["status"])
	require.Equal(t, "info", entry["level"])
}

func TestDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Writer: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("hidden too")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("out", "dist").Error(errors.New("disk full"), "export failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "export failed", entry["message"])
	require.Equal(t, "dist", entry["out"])
	require.Equal(t, "disk full", entry["error"])
}

func TestConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Format: FormatConsole, Writer: buf})
	require.NoError(t, err)

	log.Info("listening")
	require.Contains(t, buf.String(), "listening")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)

	_, err = New(Options{Format: "xml"})
	require.Error(t, err)
}

func TestNilAndNopAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.WithFields(map[string]any{"a": 1}).Warn("y")
		Nop().Error(errors.New("z"), "z")
	})
}

func TestRequestLevelFollowsStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		level  string
	}{
		{200, "info"},
		{404, "warn"},
		{500, "error"},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		log, err := New(Options{Writer: buf})
		require.NoError(t, err)

		log.Named("server").Request("id-1", "GET", "/", tt.status, 3*time.Millisecond)

		var entry logEntry
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, tt.level, entry["level"])
		require.Equal(t, "server", entry["component"])
		require.Equal(t, "id-1", entry["request_id"])
		require.Equal(t, float64(tt.status), entry["status"])
		require.Equal(t, "request", entry["message"])
	}
}
