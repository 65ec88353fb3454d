package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/application/usecase"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
	"github.com/bnema/dumbwm/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func sequentialIDs() func() entity.ContainerID {
	n := 0
	return func() entity.ContainerID {
		n++
		return entity.ContainerID(fmt.Sprintf("c%d", n))
	}
}

// world is a single 1920x1080 monitor with one workspace.
type world struct {
	state     *entity.WmState
	tree      *entity.Tree
	monitor   *entity.Container
	workspace *entity.Container
}

func newWorld(t *testing.T, dir entity.TilingDirection) world {
	t.Helper()
	tree := entity.NewTreeWithIDs(sequentialIDs())
	monitor, err := tree.AddMonitor("DP-1", entity.Rect{Width: 1920, Height: 1080}, 1)
	require.NoError(t, err)
	workspace, err := tree.AddWorkspace(monitor.ID, "1", dir)
	require.NoError(t, err)
	return world{
		state:     entity.NewWmState(tree),
		tree:      tree,
		monitor:   monitor,
		workspace: workspace,
	}
}

func (w world) tile(t *testing.T, parent entity.ContainerID, handle entity.WindowHandle, size float64) *entity.Container {
	t.Helper()
	c, err := w.tree.AddTilingWindow(parent, -1, nativeWindow(handle), size)
	require.NoError(t, err)
	return c
}

func (w world) float(t *testing.T, workspace entity.ContainerID, handle entity.WindowHandle, state entity.WindowState) *entity.Container {
	t.Helper()
	rect := entity.Rect{X: 100 * int(handle), Y: 100, Width: 400, Height: 300}
	c, err := w.tree.AddNonTilingWindow(workspace, nativeWindow(handle), state, rect)
	require.NoError(t, err)
	return c
}

func (w world) split(t *testing.T, parent entity.ContainerID, dir entity.TilingDirection, size float64) *entity.Container {
	t.Helper()
	c, err := w.tree.AddSplit(parent, -1, dir, size)
	require.NoError(t, err)
	return c
}

func (w world) focus(t *testing.T, c *entity.Container) {
	t.Helper()
	require.NoError(t, w.tree.SetFocusedDescendant(c.ID, ""))
}

// secondMonitor adds a monitor to the right of the first one.
func (w world) secondMonitor(t *testing.T) (*entity.Container, *entity.Container) {
	t.Helper()
	monitor, err := w.tree.AddMonitor("DP-2", entity.Rect{X: 1920, Width: 1920, Height: 1080}, 1)
	require.NoError(t, err)
	workspace, err := w.tree.AddWorkspace(monitor.ID, "2", entity.TilingHorizontal)
	require.NoError(t, err)
	return monitor, workspace
}

func nativeWindow(handle entity.WindowHandle) entity.NativeWindow {
	return entity.NativeWindow{
		Handle:      handle,
		Title:       fmt.Sprintf("window %d", handle),
		ClassName:   "term",
		ProcessName: "term",
	}
}

func focusedID(t *testing.T, state *entity.WmState) entity.ContainerID {
	t.Helper()
	focused, ok := state.FocusedContainer()
	require.True(t, ok, "expected a focused container")
	return focused.ID
}

func mustMatcher(t *testing.T, pattern string) entity.StringMatcher {
	t.Helper()
	m, err := entity.NewStringMatcher(pattern)
	require.NoError(t, err)
	return m
}

func mustDelta(t *testing.T, s string) value.LengthDelta {
	t.Helper()
	d, err := value.ParseLengthDelta(s)
	require.NoError(t, err)
	return d
}

func eventTypes(events []entity.WmEvent) []entity.WmEventType {
	types := make([]entity.WmEventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func configWith(modify func(*usecase.UserConfig)) *usecase.UserConfig {
	cfg := usecase.DefaultUserConfig()
	if modify != nil {
		modify(cfg)
	}
	return cfg
}
