package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

type managerHarness struct {
	world     world
	manager   *usecase.WindowManager
	native    *mocks.MockNativeWindowSystem
	publisher *mocks.MockEventPublisher
	flushes   int
	published []entity.WmEvent
}

func newManagerHarness(t *testing.T, cfg *usecase.UserConfig) *managerHarness {
	t.Helper()
	h := &managerHarness{
		world:     newWorld(t, entity.TilingHorizontal),
		native:    mocks.NewMockNativeWindowSystem(t),
		publisher: mocks.NewMockEventPublisher(t),
	}

	h.native.EXPECT().ApplyPlacement(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, []port.WindowPlacement) error {
			h.flushes++
			return nil
		}).Maybe()
	h.native.EXPECT().SetForeground(mock.Anything, mock.Anything).Return(nil).Maybe()
	h.native.EXPECT().ResetForeground(mock.Anything).Return(nil).Maybe()
	h.native.EXPECT().SetCursorPosition(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	h.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e entity.WmEvent) {
			h.published = append(h.published, e)
		}).Return().Maybe()

	h.manager = usecase.NewWindowManager(h.world.state, usecase.StaticConfig(cfg), h.native, h.publisher)
	return h
}

func (h *managerHarness) handle(t *testing.T, event entity.NativeEvent) {
	t.Helper()
	require.NoError(t, h.manager.HandleEvent(testContext(), event))
	assert.True(t, h.world.state.PendingSync.IsEmpty(), "every event ends with a flush")
}

func TestWindowManager_ManageAndDestroy(t *testing.T) {
	h := newManagerHarness(t, usecase.DefaultUserConfig())

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(1)})
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(2)})

	assert.Equal(t, 2, h.flushes)
	second, ok := h.world.state.WindowFromNative(2)
	require.True(t, ok)
	assert.Equal(t, second.ID, focusedID(t, h.world.state))
	h.native.AssertCalled(t, "SetForeground", mock.Anything, nativeWindow(2))

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowDestroyed, Window: entity.NativeWindow{Handle: 2}})

	_, ok = h.world.state.WindowFromNative(2)
	assert.False(t, ok)
	first, ok := h.world.state.WindowFromNative(1)
	require.True(t, ok)
	assert.Equal(t, first.ID, focusedID(t, h.world.state))
	assert.Contains(t, eventTypes(h.published), entity.EventWindowUnmanaged)
}

func TestWindowManager_ManageRunsRules(t *testing.T) {
	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			{
				Name:     "float-dialogs",
				On:       []entity.WindowRuleEvent{entity.RuleEventManage},
				Commands: []string{"set-floating"},
				Match:    entity.WindowMatch{Title: mustMatcher(t, "/^Open/")},
			},
		}
	})
	h := newManagerHarness(t, cfg)

	dialog := entity.NativeWindow{Handle: 9, Title: "Open File", ClassName: "gtk"}
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: dialog})

	window, ok := h.world.state.WindowFromNative(9)
	require.True(t, ok)
	assert.True(t, window.HasState(entity.WindowStateFloating))
	assert.Equal(t, window.ID, focusedID(t, h.world.state))
	assert.Equal(t, 1, h.flushes)
}

func TestWindowManager_ManageTwiceSkipsRules(t *testing.T) {
	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			{
				Name:     "flip-floating",
				On:       []entity.WindowRuleEvent{entity.RuleEventManage},
				Commands: []string{"toggle-floating"},
				Match:    entity.WindowMatch{Class: mustMatcher(t, "gtk")},
			},
		}
	})
	h := newManagerHarness(t, cfg)

	dialog := entity.NativeWindow{Handle: 9, Title: "Open File", ClassName: "gtk"}
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: dialog})
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: dialog})

	window, ok := h.world.state.WindowFromNative(9)
	require.True(t, ok)
	assert.True(t, window.HasState(entity.WindowStateFloating), "rules ran once")
	assert.Len(t, h.world.tree.Windows(), 1)

	managed := 0
	for _, e := range h.published {
		if e.Type == entity.EventWindowManaged {
			managed++
		}
	}
	assert.Equal(t, 1, managed)
}

func TestWindowManager_FocusAndTitleEvents(t *testing.T) {
	cfg := configWith(func(c *usecase.UserConfig) {
		c.WindowRules = []entity.WindowRule{
			{
				Name:     "fullscreen-video",
				On:       []entity.WindowRuleEvent{entity.RuleEventTitleChange},
				Commands: []string{"set-fullscreen"},
				Match:    entity.WindowMatch{Title: mustMatcher(t, "/YouTube/")},
			},
		}
	})
	h := newManagerHarness(t, cfg)

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(1)})
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(2)})
	h.published = nil

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowFocused, Window: entity.NativeWindow{Handle: 1}})
	first, ok := h.world.state.WindowFromNative(1)
	require.True(t, ok)
	assert.Equal(t, first.ID, focusedID(t, h.world.state))
	require.Len(t, h.published, 1)
	assert.Equal(t, entity.EventFocusChanged, h.published[0].Type)

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowFocused, Window: entity.NativeWindow{Handle: 404}})

	h.handle(t, entity.NativeEvent{
		Type:   entity.NativeWindowTitleChanged,
		Window: entity.NativeWindow{Handle: 1, Title: "Cats - YouTube"},
	})
	video, ok := h.world.state.WindowFromNative(1)
	require.True(t, ok)
	assert.Equal(t, "Cats - YouTube", video.Native.Title)
	assert.True(t, video.HasState(entity.WindowStateFullscreen))
}

func TestWindowManager_Commands(t *testing.T) {
	h := newManagerHarness(t, usecase.DefaultUserConfig())

	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(1)})
	h.handle(t, entity.NativeEvent{Type: entity.NativeWindowManaged, Window: nativeWindow(2)})

	h.handle(t, entity.NativeEvent{Type: entity.NativeCommand, Command: "focus --direction left"})
	first, _ := h.world.state.WindowFromNative(1)
	assert.Equal(t, first.ID, focusedID(t, h.world.state))

	err := h.manager.HandleEvent(testContext(), entity.NativeEvent{Type: entity.NativeCommand, Command: "explode"})
	assert.ErrorIs(t, err, usecase.ErrUnknownCommand)

	snapshot, err := h.manager.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "root", snapshot.Type)
	require.Len(t, snapshot.Children, 1)
}

func TestWindowManager_RejectsInvalidEvents(t *testing.T) {
	h := newManagerHarness(t, usecase.DefaultUserConfig())

	assert.Error(t, h.manager.HandleEvent(testContext(), entity.NativeEvent{Type: "resize_everything"}))
	assert.Error(t, h.manager.HandleEvent(testContext(), entity.NativeEvent{Type: entity.NativeWindowManaged}))
	assert.Error(t, h.manager.HandleEvent(testContext(), entity.NativeEvent{Type: entity.NativeCommand}))
	assert.Zero(t, h.flushes)
}
