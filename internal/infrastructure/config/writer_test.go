package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "[[window_rules]]")
	assert.Contains(t, text, `resize_step = '+5%'`)
	assert.Contains(t, text, `inner = '10px'`)

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, ErrConfigExists)
	require.NoError(t, WriteDefault(path, true))
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	m, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	assert.Equal(t, DefaultConfig(), m.Get())
}

func TestEncode_Nil(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}
