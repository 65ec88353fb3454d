package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

func modeNames(modes []entity.BindingMode) []string {
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.Name)
	}
	return names
}

func TestBindingModes(t *testing.T) {
	cfg := configWith(func(c *usecase.UserConfig) {
		c.BindingModes = []entity.BindingMode{
			{Name: "resize", DisplayName: "Resize"},
			{Name: "pause"},
		}
	})

	t.Run("enable prepends and moves to front", func(t *testing.T) {
		w := newWorld(t, entity.TilingHorizontal)
		uc := usecase.NewBindingModesUseCase()
		ctx := testContext()

		require.NoError(t, uc.Enable(ctx, w.state, cfg, "resize"))
		require.NoError(t, uc.Enable(ctx, w.state, cfg, "pause"))
		assert.Equal(t, []string{"pause", "resize"}, modeNames(w.state.BindingModes))

		require.NoError(t, uc.Enable(ctx, w.state, cfg, "resize"))
		assert.Equal(t, []string{"resize", "pause"}, modeNames(w.state.BindingModes))
		assert.Equal(t, "Resize", w.state.BindingModes[0].DisplayName)

		events := w.state.PendingSync.Events()
		require.Len(t, events, 3)
		assert.Equal(t, []string{"resize", "pause"}, modeNames(events[2].BindingModes))
		assert.Equal(t, []string{"pause", "resize"}, modeNames(events[1].BindingModes), "earlier events keep their own copy")
	})

	t.Run("unknown mode", func(t *testing.T) {
		w := newWorld(t, entity.TilingHorizontal)
		uc := usecase.NewBindingModesUseCase()

		err := uc.Enable(testContext(), w.state, cfg, "launcher")
		assert.ErrorIs(t, err, usecase.ErrUnknownBindingMode)
		assert.Empty(t, w.state.BindingModes)
		assert.True(t, w.state.PendingSync.IsEmpty())
	})

	t.Run("disable removes by name", func(t *testing.T) {
		w := newWorld(t, entity.TilingHorizontal)
		uc := usecase.NewBindingModesUseCase()
		ctx := testContext()

		require.NoError(t, uc.Enable(ctx, w.state, cfg, "resize"))
		require.NoError(t, uc.Enable(ctx, w.state, cfg, "pause"))
		w.state.PendingSync.Reset()

		require.NoError(t, uc.Disable(ctx, w.state, "resize"))
		assert.Equal(t, []string{"pause"}, modeNames(w.state.BindingModes))

		events := w.state.PendingSync.Events()
		require.Len(t, events, 1)
		assert.Equal(t, entity.EventBindingModesChanged, events[0].Type)
		assert.Equal(t, []string{"pause"}, modeNames(events[0].BindingModes))
	})
}
