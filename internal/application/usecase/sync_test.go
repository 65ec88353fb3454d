package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/application/port/mocks"
	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
)

func TestSyncFlush_EmptyDoesNothing(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)

	uc := usecase.NewSyncUseCase(native, publisher)
	require.NoError(t, uc.Flush(testContext(), w.state, usecase.DefaultUserConfig()))
}

func TestSyncFlush_Redraw(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 0.5)
	b := w.tile(t, w.workspace.ID, 2, 0.5)
	hiddenWorkspace, err := w.tree.AddWorkspace(w.monitor.ID, "2", entity.TilingHorizontal)
	require.NoError(t, err)
	hidden := w.tile(t, hiddenWorkspace.ID, 3, 1)
	minimized := w.float(t, w.workspace.ID, 4, entity.WindowStateMinimized)

	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)

	var placements []port.WindowPlacement
	native.EXPECT().ApplyPlacement(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p []port.WindowPlacement) error {
			placements = p
			return nil
		}).Once()

	cfg := configWith(func(c *usecase.UserConfig) {
		c.Gaps = entity.Gaps{Inner: value.FromPx(20), Outer: value.FromPx(10)}
	})

	w.state.PendingSync.QueueRedraw(w.monitor.ID, w.workspace.ID)
	uc := usecase.NewSyncUseCase(native, publisher)
	require.NoError(t, uc.Flush(testContext(), w.state, cfg))

	byHandle := make(map[entity.WindowHandle]port.WindowPlacement)
	for _, p := range placements {
		byHandle[p.Window.Handle] = p
	}
	require.Len(t, placements, 4, "each window placed once")

	assert.Equal(t, entity.Rect{X: 10, Y: 10, Width: 940, Height: 1060}, byHandle[a.Native.Handle].Rect)
	assert.Equal(t, entity.Rect{X: 970, Y: 10, Width: 940, Height: 1060}, byHandle[b.Native.Handle].Rect)
	assert.True(t, byHandle[a.Native.Handle].Visible)
	assert.Equal(t, entity.WindowStateTiling, byHandle[a.Native.Handle].State)
	assert.False(t, byHandle[hidden.Native.Handle].Visible)
	assert.False(t, byHandle[minimized.Native.Handle].Visible)
	assert.Equal(t, entity.WindowStateMinimized, byHandle[minimized.Native.Handle].State)
	assert.True(t, w.state.PendingSync.IsEmpty())
}

func TestSyncFlush_FocusCursorAndEvents(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	w.focus(t, a)

	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)

	var order []string
	native.EXPECT().SetForeground(mock.Anything, a.Native).
		RunAndReturn(func(context.Context, entity.NativeWindow) error {
			order = append(order, "foreground")
			return nil
		}).Once()
	native.EXPECT().SetCursorPosition(mock.Anything, 960, 540).
		RunAndReturn(func(context.Context, int, int) error {
			order = append(order, "cursor")
			return nil
		}).Once()

	var published []entity.WmEvent
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e entity.WmEvent) {
			order = append(order, "publish")
			published = append(published, e)
		}).Return().Times(2)

	w.state.PendingSync.
		QueueFocusChange().
		QueueCursorJump().
		QueueEvent(entity.TilingDirectionChanged(w.workspace.ID, entity.TilingVertical))

	uc := usecase.NewSyncUseCase(native, publisher)
	require.NoError(t, uc.Flush(testContext(), w.state, usecase.DefaultUserConfig()))

	assert.Equal(t, []string{"foreground", "cursor", "publish", "publish"}, order)
	assert.Equal(t, []entity.WmEventType{entity.EventTilingDirectionChanged, entity.EventFocusChanged}, eventTypes(published))
	assert.Equal(t, a.ID, published[1].ContainerID)
}

func TestSyncFlush_EmptyWorkspaceResetsForeground(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)

	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)
	native.EXPECT().ResetForeground(mock.Anything).Return(nil).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e entity.WmEvent) bool {
		return e.Type == entity.EventFocusChanged && e.ContainerID == w.workspace.ID
	})).Return().Once()

	w.state.PendingSync.QueueFocusChange().QueueCursorJump()

	uc := usecase.NewSyncUseCase(native, publisher)
	require.NoError(t, uc.Flush(testContext(), w.state, usecase.DefaultUserConfig()))
}

func TestSyncFlush_CursorJumpDisabled(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	w.focus(t, a)

	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)

	cfg := configWith(func(c *usecase.UserConfig) { c.CursorJump = false })
	w.state.PendingSync.QueueCursorJump()

	uc := usecase.NewSyncUseCase(native, publisher)
	require.NoError(t, uc.Flush(testContext(), w.state, cfg))
	assert.True(t, w.state.PendingSync.IsEmpty())
}

func TestSyncFlush_ErrorsAreJoined(t *testing.T) {
	w := newWorld(t, entity.TilingHorizontal)
	a := w.tile(t, w.workspace.ID, 1, 1)
	w.focus(t, a)

	native := mocks.NewMockNativeWindowSystem(t)
	publisher := mocks.NewMockEventPublisher(t)

	placeErr := errors.New("placement failed")
	focusErr := errors.New("focus failed")
	native.EXPECT().ApplyPlacement(mock.Anything, mock.Anything).Return(placeErr).Once()
	native.EXPECT().SetForeground(mock.Anything, a.Native).Return(focusErr).Once()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return().Once()

	w.state.PendingSync.QueueRedraw(w.workspace.ID).QueueFocusChange()

	uc := usecase.NewSyncUseCase(native, publisher)
	err := uc.Flush(testContext(), w.state, usecase.DefaultUserConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, placeErr)
	assert.ErrorIs(t, err, focusErr)
	assert.True(t, w.state.PendingSync.IsEmpty())
}
