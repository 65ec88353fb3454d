package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/cli/styles"
)

func TestConfigCommands(t *testing.T) {
	theme := styles.NewTheme()
	path := filepath.Join(t.TempDir(), "dumbwm", "config.toml")

	t.Run("path before init", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printConfigPath(&buf, theme, path))
		assert.Contains(t, buf.String(), "config init")
	})

	t.Run("validate missing file", func(t *testing.T) {
		var buf bytes.Buffer
		require.Error(t, validateConfig(&buf, theme, path))
		assert.Contains(t, buf.String(), "Config error")
	})

	t.Run("init writes defaults", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, initConfig(&buf, theme, path, false))
		assert.Contains(t, buf.String(), "config.toml")
		assert.FileExists(t, path)
	})

	t.Run("init keeps existing file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, initConfig(&buf, theme, path, false))
		assert.Contains(t, buf.String(), "--force")
	})

	t.Run("validate defaults", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, validateConfig(&buf, theme, path))
		assert.Contains(t, buf.String(), "is valid")
		assert.Contains(t, buf.String(), "window rules")
	})

	t.Run("validate reports problems", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("[[window_rules]]\nname = \"x\"\non = [\"hover\"]\ncommands = [\"ignore\"]\n"), 0o600))

		var buf bytes.Buffer
		require.Error(t, validateConfig(&buf, theme, bad))
		assert.Contains(t, buf.String(), "window_rules[0].on")
	})
}
