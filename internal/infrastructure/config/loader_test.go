package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
	"github.com/bnema/dumbwm/internal/logging"
)

const sampleConfig = `
[logging]
level = "debug"

[general]
cursor_jump = false
resize_step = "-10%"

[gaps]
inner = "20px"
outer = "5%"

[[window_rules]]
name = "float-dialogs"
on = ["manage", "title_change"]
commands = ["set-floating"]
run_once = true

  [window_rules.match]
  title = "/^Open/"

[[binding_modes]]
name = "resize"
display_name = "Resize"
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), filePerm))
	return path
}

func loadFile(t *testing.T, content string) (*Manager, error) {
	t.Helper()
	m, err := NewManagerForFile(writeFile(t, content))
	require.NoError(t, err)
	return m, m.Load()
}

func TestManager_LoadFile(t *testing.T) {
	m, err := loadFile(t, sampleConfig)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format, "unset keys fall back to defaults")
	assert.False(t, cfg.General.CursorJump)
	assert.Equal(t, value.LengthDelta{Inner: value.FromPercent(10), IsNegative: true}, cfg.General.ResizeStep)
	assert.Equal(t, value.FromPx(20), cfg.Gaps.Inner)
	assert.Equal(t, value.FromPercent(5), cfg.Gaps.Outer)

	require.Len(t, cfg.WindowRules, 1)
	rule := cfg.WindowRules[0]
	assert.Equal(t, "float-dialogs", rule.Name)
	assert.Equal(t, []string{"manage", "title_change"}, rule.On)
	assert.True(t, rule.RunOnce)
	assert.Equal(t, "/^Open/", rule.Match.Title)

	user := m.UserConfig()
	require.Len(t, user.WindowRules, 1)
	assert.Equal(t, []entity.WindowRuleEvent{entity.RuleEventManage, entity.RuleEventTitleChange}, user.WindowRules[0].On)
	assert.True(t, user.WindowRules[0].Match.Matches(entity.NativeWindow{Title: "Open File"}))
	assert.False(t, user.WindowRules[0].Match.Matches(entity.NativeWindow{Title: "Reopen"}))
	assert.Equal(t, []entity.BindingMode{{Name: "resize", DisplayName: "Resize"}}, user.BindingModes)
	assert.Equal(t, value.FromPx(20), user.Gaps.Inner)
	assert.False(t, user.CursorJump)

	assert.Same(t, user, m.Source()())
}

func TestManager_EnvOverrides(t *testing.T) {
	t.Setenv("DUMBWM_GAPS_INNER", "4px")
	t.Setenv("DUMBWM_LOG_FORMAT", "json")

	m, err := loadFile(t, sampleConfig)
	require.NoError(t, err)

	cfg := m.Get()
	assert.Equal(t, value.FromPx(4), cfg.Gaps.Inner)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestManager_LoadErrors(t *testing.T) {
	t.Run("invalid length", func(t *testing.T) {
		_, err := loadFile(t, "[gaps]\ninner = \"10em\"\n")
		require.Error(t, err)
		assert.ErrorIs(t, err, value.ErrParse)
	})

	t.Run("invalid toml", func(t *testing.T) {
		_, err := loadFile(t, "[gaps\ninner = ")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("validation", func(t *testing.T) {
		_, err := loadFile(t, "[[window_rules]]\nname = \"x\"\non = [\"hover\"]\ncommands = [\"ignore\"]\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "window_rules[0].on")
	})
}

func TestManager_GetBeforeLoad(t *testing.T) {
	m, err := NewManagerForFile(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), m.Get())
	assert.True(t, m.UserConfig().CursorJump)
}

func TestManager_DefaultsMatchDefaultConfig(t *testing.T) {
	m, err := loadFile(t, "")
	require.NoError(t, err)

	cfg := m.Get()
	defaults := DefaultConfig()
	assert.Equal(t, defaults.Logging, cfg.Logging)
	assert.Equal(t, defaults.General, cfg.General)
	assert.Equal(t, defaults.Gaps, cfg.Gaps)
}

func TestManager_WatchReloads(t *testing.T) {
	path := writeFile(t, sampleConfig)
	m, err := NewManagerForFile(path)
	require.NoError(t, err)
	require.NoError(t, m.Load())

	var reloads atomic.Int32
	m.OnConfigChange(func(cfg *Config) {
		if cfg.Gaps.Inner == value.FromPx(30) {
			reloads.Add(1)
		}
	})

	ctx := logging.WithContext(t.Context(), zerolog.Nop())
	require.NoError(t, m.Watch(ctx))
	require.NoError(t, m.Watch(ctx), "watching twice is a no-op")

	updated := []byte("[gaps]\ninner = \"30px\"\n")
	require.NoError(t, os.WriteFile(path, updated, filePerm))

	require.Eventually(t, func() bool { return reloads.Load() > 0 }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, value.FromPx(30), m.UserConfig().Gaps.Inner)
}
