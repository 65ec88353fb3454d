package scenario

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

const twoMonitors = `
name: two monitors
monitors:
  - name: DP-1
    rect: {x: 0, y: 0, width: 1920, height: 1080}
    workspaces:
      - name: "1"
      - name: "2"
        tiling_direction: vertical
  - name: DP-2
    rect: {x: 1920, y: 0, width: 2560, height: 1440}
    scale_factor: 1.5
    workspaces:
      - name: "3"
events:
  - type: window_managed
    window: {handle: 1, title: editor, class: code, process: code}
  - type: command
    command: focus --direction right
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(twoMonitors))
	require.NoError(t, err)

	assert.Equal(t, "two monitors", s.Name)
	require.Len(t, s.Monitors, 2)
	assert.Equal(t, 1.0, s.Monitors[0].ScaleFactor, "scale factor defaults to 1")
	assert.Equal(t, entity.TilingHorizontal, s.Monitors[0].Workspaces[0].TilingDirection)
	assert.Equal(t, entity.TilingVertical, s.Monitors[0].Workspaces[1].TilingDirection)
	assert.Equal(t, 1.5, s.Monitors[1].ScaleFactor)

	require.Len(t, s.Events, 2)
	assert.Equal(t, entity.NativeWindow{Handle: 1, Title: "editor", ClassName: "code", ProcessName: "code"}, s.Events[0].Window)
	assert.Equal(t, "focus --direction right", s.Events[1].Command)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{name: "no monitors", doc: "name: empty\n", want: []string{"at least one monitor"}},
		{name: "unknown key", doc: "monitor: []\n", want: []string{"field monitor not found"}},
		{
			name: "collects problems",
			doc: `
monitors:
  - rect: {width: 0, height: 10}
    workspaces:
      - name: a
      - name: a
        tiling_direction: diagonal
events:
  - type: window_managed
`,
			want: []string{
				"monitors[0]: name is required",
				"monitors[0]: rect must have a positive size",
				`workspace "a" is declared twice`,
				`unknown tiling direction "diagonal"`,
				"events[0]: window_managed event: window handle is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			for _, want := range tt.want {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestLoadAndBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoMonitors), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	state, err := s.Build()
	require.NoError(t, err)

	root := state.Tree.Root()
	require.Len(t, root.Children, 2)

	first, ok := state.Tree.Get(root.Children[0])
	require.True(t, ok)
	assert.Equal(t, "DP-1", first.Name)
	assert.Len(t, first.Children, 2)

	focused, ok := state.FocusedContainer()
	require.True(t, ok)
	assert.True(t, focused.IsWorkspace())
	assert.Equal(t, "1", focused.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read scenario")
}

const nestedLayout = `
monitors:
  - name: DP-1
    rect: {width: 1920, height: 1080}
    workspaces:
      - name: "1"
        children:
          - window: {handle: 1, class: editor}
          - split:
              children:
                - window: {handle: 2, class: term}
                - split:
                    children:
                      - window: {handle: 3, class: term}
                      - window: {handle: 4, class: term}
`

func TestBuild_NestedLayout(t *testing.T) {
	s, err := Parse([]byte(nestedLayout))
	require.NoError(t, err)

	outer := s.Monitors[0].Workspaces[0].Children[1].Split
	require.NotNil(t, outer)
	assert.Equal(t, entity.TilingVertical, outer.TilingDirection, "splits default to the opposite axis")
	assert.Equal(t, entity.TilingHorizontal, outer.Children[1].Split.TilingDirection)

	state, err := s.Build()
	require.NoError(t, err)
	require.NoError(t, state.Tree.Validate())

	first, ok := state.WindowFromNative(1)
	require.True(t, ok)
	assert.InDelta(t, 0.5, first.TilingSize, 1e-9)

	deepest, ok := state.WindowFromNative(4)
	require.True(t, ok)
	inner, ok := state.Tree.Parent(deepest.ID)
	require.True(t, ok)
	assert.True(t, inner.IsSplit())
	assert.InDelta(t, 0.5, inner.TilingSize, 1e-9)

	split, ok := state.Tree.Parent(inner.ID)
	require.True(t, ok)
	assert.True(t, split.IsSplit())
	workspace, ok := state.Tree.Parent(split.ID)
	require.True(t, ok)
	assert.True(t, workspace.IsWorkspace())
	assert.Len(t, state.Tree.Windows(), 4)
}

func TestParse_LayoutErrors(t *testing.T) {
	doc := `
monitors:
  - name: DP-1
    rect: {width: 1920, height: 1080}
    workspaces:
      - name: "1"
        children:
          - window: {handle: 1}
          - window: {handle: 1}
          - {}
          - split: {tiling_direction: diagonal, children: []}
          - window: {handle: 2}
            split: {children: [{window: {handle: 3}}]}
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	for _, want := range []string{
		"children[1]: window handle 1 is declared twice",
		"children[2]: one of window or split is required",
		`children[3]: unknown tiling direction "diagonal"`,
		"children[3]: split needs at least one child",
		"children[4]: window and split are mutually exclusive",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestDefault(t *testing.T) {
	sc := Default()
	require.NoError(t, sc.Validate())

	state, err := sc.Build()
	require.NoError(t, err)

	focused, ok := state.FocusedContainer()
	require.True(t, ok)
	assert.True(t, focused.IsWorkspace())
	assert.Equal(t, "1", focused.Name)
}

func TestStreamEvents(t *testing.T) {
	input := strings.Join([]string{
		`{"type":"window_managed","window":{"handle":3,"title":"term","class_name":"foot","process_name":"foot"}}`,
		``,
		`# comment`,
		`{"type":"command","command":"toggle-floating"}`,
	}, "\n")

	events := make(chan entity.NativeEvent, 4)
	require.NoError(t, StreamEvents(context.Background(), strings.NewReader(input), events))

	var got []entity.NativeEvent
	for e := range events {
		got = append(got, e)
	}
	require.Len(t, got, 2)
	assert.Equal(t, entity.WindowHandle(3), got[0].Window.Handle)
	assert.Equal(t, "foot", got[0].Window.ClassName)
	assert.Equal(t, entity.NativeCommand, got[1].Type)
}

func TestStreamEvents_Errors(t *testing.T) {
	t.Run("malformed line", func(t *testing.T) {
		events := make(chan entity.NativeEvent, 4)
		err := StreamEvents(context.Background(), strings.NewReader("{\"type\":\"command\",\"command\":\"x\"}\n{oops"), events)
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := DecodeEvent([]byte(`{"type":"command","cmd":"x"}`))
		assert.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		events := make(chan entity.NativeEvent)
		err := StreamEvents(ctx, strings.NewReader(`{"type":"command","command":"x"}`), events)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
