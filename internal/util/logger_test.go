package util

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := &Logger{
		level:  ParseLogLevel(level),
		fields: make(map[string]interface{}),
	}
	l.AddOutput(NewConsoleOutput(buf, format))
	return l, buf
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" warn ":  LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}

	for input, expected := range tests {
		assert.Equal(t, expected, ParseLogLevel(input), "input %q", input)
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger("warn", FormatText)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn")
	l.Errorf("shown %s", "error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown warn")
	assert.Contains(t, out, "[ERROR] shown error")
}

func TestLoggerTextFieldsSorted(t *testing.T) {
	l, buf := newBufferLogger("debug", FormatText)

	l.With(F("zeta", 1)).Info("msg", F("alpha", "a"), F("mid", true))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "[INFO] msg alpha=a mid=true zeta=1"), line)
}

func TestLoggerJSONFormat(t *testing.T) {
	l, buf := newBufferLogger("info", FormatJSON)

	l.Info("saved", F("items", 5))

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "saved", entry.Message)
	assert.EqualValues(t, 5, entry.Fields["items"])
	assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Minute)
}

func TestLoggerWithContext(t *testing.T) {
	l, buf := newBufferLogger("info", FormatText)
	ctx := context.WithValue(context.Background(), ContextKeyCommand, "recommend")
	ctx = context.WithValue(ctx, ContextKeyQuery, "golang")

	l.WithContext(ctx).Info("fetching")

	assert.Contains(t, buf.String(), "command=recommend query=golang")
}

func TestLoggerSetLevel(t *testing.T) {
	l, buf := newBufferLogger("error", FormatText)

	l.Info("before")
	l.SetLevel(LevelDebug)
	l.Debug("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestNewLoggerRequiresDestination(t *testing.T) {
	_, err := NewLogger("info", "", false, FormatText)
	assert.Error(t, err)
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logs", "app.log")

	l, err := NewLogger("debug", path, false, FormatText)
	require.NoError(t, err)
	l.Infof("written %d", 1)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] written 1")
}

func TestGlobalLoggerHelpers(t *testing.T) {
	l, buf := newBufferLogger("debug", FormatText)
	SetLogger(l)
	defer CloseLogger()

	LogDebugf("debug %d", 1)
	LogInfo("info", F("k", "v"))
	LogWarnf("warn %s", "x")
	LogError("error")

	out := buf.String()
	assert.Contains(t, out, "[DEBUG] debug 1")
	assert.Contains(t, out, "[INFO] info k=v")
	assert.Contains(t, out, "[WARN] warn x")
	assert.Contains(t, out, "[ERROR] error")
}

func TestGlobalLoggerDisabled(t *testing.T) {
	CloseLogger()

	assert.NotPanics(t, func() {
		LogInfof("no logger %d", 1)
		LogDebug("no logger")
	})
}
