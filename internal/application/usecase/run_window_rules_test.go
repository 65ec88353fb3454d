package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

func manageRule(t *testing.T, name, class string, runOnce bool, commands ...string) entity.WindowRule {
	t.Helper()
	return entity.WindowRule{
		Name:     name,
		On:       []entity.WindowRuleEvent{entity.RuleEventManage},
		Commands: commands,
		RunOnce:  runOnce,
		Match:    entity.WindowMatch{Class: mustMatcher(t, class)},
	}
}

func TestRunWindowRules_ExecutesMatchingRulesInOrder(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	window, _ := a.AsWindow()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			manageRule(t, "first", "term", false, "cmd-a", "cmd-b"),
			manageRule(t, "other-class", "browser", false, "never"),
			manageRule(t, "second", "/^te/", false, "cmd-c"),
		}
	})

	executor := mocks.NewMockCommandExecutor(t)
	var ran []string
	executor.EXPECT().
		Execute(mock.Anything, mock.Anything, a.ID, w.state).
		RunAndReturn(func(_ context.Context, command string, _ entity.ContainerID, _ *entity.WmState) error {
			ran = append(ran, command)
			return nil
		}).
		Times(3)

	uc := usecase.NewRunWindowRulesUseCase(executor)
	outcome, err := uc.Execute(testContext(), window, entity.RuleEventManage, w.state, cfg)

	require.NoError(t, err)
	assert.False(t, outcome.Gone)
	assert.Equal(t, a.ID, outcome.Window.ID)
	assert.Equal(t, []string{"cmd-a", "cmd-b", "cmd-c"}, ran)
}

func TestRunWindowRules_SkipsOtherEvents(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	window, _ := a.AsWindow()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{manageRule(t, "on-manage", "term", false, "cmd")}
	})

	executor := mocks.NewMockCommandExecutor(t)
	uc := usecase.NewRunWindowRulesUseCase(executor)

	outcome, err := uc.Execute(testContext(), window, entity.RuleEventFocus, w.state, cfg)
	require.NoError(t, err)
	assert.Equal(t, a.ID, outcome.Window.ID)
}

func TestRunWindowRules_ExecutorErrorStopsPipeline(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	window, _ := a.AsWindow()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{manageRule(t, "broken", "term", true, "bad", "after")}
	})

	executor := mocks.NewMockCommandExecutor(t)
	boom := errors.New("boom")
	executor.EXPECT().Execute(mock.Anything, "bad", a.ID, w.state).Return(boom).Once()

	uc := usecase.NewRunWindowRulesUseCase(executor)
	_, err := uc.Execute(testContext(), window, entity.RuleEventManage, w.state, cfg)

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), `"broken"`)
	assert.False(t, window.HasRunRule("broken"))
}

func TestRunWindowRules_FollowsReplacedContainer(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	w.focus(t, a)
	window, _ := a.AsWindow()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			manageRule(t, "float-then-full", "term", true, "set-floating", "set-fullscreen"),
		}
	})

	uc := usecase.NewRunWindowRulesUseCase(usecase.NewCommandRunner(usecase.StaticConfig(cfg)))
	outcome, err := uc.Execute(testContext(), window, entity.RuleEventManage, w.state, cfg)

	require.NoError(t, err)
	assert.False(t, outcome.Gone)
	assert.NotEqual(t, a.ID, outcome.Window.ID)
	assert.True(t, outcome.Window.HasState(entity.WindowStateFullscreen))
	assert.True(t, outcome.Window.HasRunRule("float-then-full"))
	assert.Len(t, w.tree.Windows(), 1)

	again, err := uc.Execute(testContext(), outcome.Window, entity.RuleEventManage, w.state, cfg)
	require.NoError(t, err)
	assert.Equal(t, outcome.Window.ID, again.Window.ID, "run-once rule does not apply twice")
}

func TestRunWindowRules_WindowGone(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	window, _ := a.AsWindow()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			manageRule(t, "drop", "term", false, "ignore", "set-floating"),
			manageRule(t, "later", "term", false, "set-fullscreen"),
		}
	})

	uc := usecase.NewRunWindowRulesUseCase(usecase.NewCommandRunner(usecase.StaticConfig(cfg)))
	outcome, err := uc.Execute(testContext(), window, entity.RuleEventManage, w.state, cfg)

	require.NoError(t, err)
	assert.True(t, outcome.Gone)
	assert.Empty(t, w.tree.Windows())
}
