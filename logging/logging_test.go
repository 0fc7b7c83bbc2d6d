package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/waypoint/config"
	"github.com/katalvlaran/waypoint/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		" warn ": slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("chatty")
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "steps", 36)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.EqualValues(t, 36, rec["steps"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(config.Default().Log, &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("search finished", "algorithm", "bfs")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="search finished"`)
	assert.Contains(t, out, "algorithm=bfs")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(config.LogConfig{Level: "loud"}, nil)
	assert.ErrorIs(t, err, logging.ErrInvalidLevel)

	_, err = logging.New(config.LogConfig{Level: "info", Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.False(t, logging.Discard().Enabled(context.Background(), slog.LevelError))
}
