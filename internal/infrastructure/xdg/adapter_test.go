package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Dirs(t *testing.T) {
	adapter := New()

	t.Run("follows XDG variables", func(t *testing.T) {
		configHome := t.TempDir()
		stateHome := t.TempDir()
		t.Setenv("ENV", "")
		t.Setenv("XDG_CONFIG_HOME", configHome)
		t.Setenv("XDG_STATE_HOME", stateHome)

		dir, err := adapter.ConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(configHome, "dumbwm"), dir)

		dir, err = adapter.StateDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(stateHome, "dumbwm"), dir)
	})

	t.Run("dev mode uses the working directory", func(t *testing.T) {
		t.Setenv("ENV", "dev")
		t.Chdir(t.TempDir())
		cwd, err := os.Getwd()
		require.NoError(t, err)

		configDir, err := adapter.ConfigDir()
		require.NoError(t, err)
		stateDir, err := adapter.StateDir()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(cwd, ".dev", "dumbwm"), configDir)
		assert.Equal(t, configDir, stateDir)
	})
}
