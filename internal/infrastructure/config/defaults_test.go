package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.General.CursorJump)
	assert.Equal(t, "+5%", cfg.General.ResizeStep.String())
	require.NoError(t, Validate(cfg))
}

func TestConfig_UserConfig(t *testing.T) {
	user, err := DefaultConfig().UserConfig()
	require.NoError(t, err)

	require.Len(t, user.WindowRules, 2)
	tooltips := user.WindowRules[0]
	assert.Equal(t, "ignore-tooltips", tooltips.Name)
	assert.Equal(t, []entity.WindowRuleEvent{entity.RuleEventManage}, tooltips.On)
	assert.True(t, tooltips.Match.Matches(entity.NativeWindow{ClassName: "Tooltip"}))
	assert.True(t, tooltips.Match.Matches(entity.NativeWindow{ClassName: "gtk-tooltip"}))
	assert.False(t, tooltips.Match.Matches(entity.NativeWindow{ClassName: "term"}))

	mode, ok := user.BindingModeByName("pause")
	require.True(t, ok)
	assert.Equal(t, "Paused", mode.DisplayName)

	t.Run("bad matcher", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.WindowRules[0].Match.Process = "/(/"

		_, err := cfg.UserConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"ignore-tooltips"`)
	})
}
