package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("DUMBWM_LOG_LEVEL", "warn")
	t.Setenv("DUMBWM_LOG_FORMAT", "json")

	cfg := ConfigFromEnv(DefaultConfig())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestConfigApply(t *testing.T) {
	cfg := DefaultConfig().Apply("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	cfg = cfg.Apply("loud", "xml")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)

	cfg = cfg.Apply("", "")
	assert.Equal(t, zerolog.DebugLevel, cfg.Level, "empty level keeps the current one")
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	ctx := WithContext(context.Background(), logger)
	ctx = WithComponent(ctx, "focus")
	ctx = WithContainerID(ctx, "c42")
	ctx = WithWindow(ctx, 255, "kitty")

	FromContext(ctx).Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "focus", entry["component"])
	assert.Equal(t, "c42", entry["container_id"])
	assert.Equal(t, "0xff", entry["handle"])
	assert.Equal(t, "kitty", entry["class"])
	assert.Equal(t, "hello", entry["message"])
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("discarded")
}
