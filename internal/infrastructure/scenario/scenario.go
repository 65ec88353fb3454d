// Package scenario loads replayable window manager sessions: the monitor
// layout to start from and the native events to feed the core.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// Scenario is the YAML document replayed by `dumbwm replay`.
type Scenario struct {
	Name     string               `yaml:"name"`
	Monitors []MonitorSpec        `yaml:"monitors"`
	Events   []entity.NativeEvent `yaml:"events"`
}

// MonitorSpec declares a monitor and its workspaces. The first workspace
// is the one displayed.
type MonitorSpec struct {
	Name        string          `yaml:"name"`
	Rect        entity.Rect     `yaml:"rect"`
	ScaleFactor float64         `yaml:"scale_factor"`
	Workspaces  []WorkspaceSpec `yaml:"workspaces"`
}

// WorkspaceSpec declares a workspace and the tiling layout it starts with.
type WorkspaceSpec struct {
	Name            string                 `yaml:"name"`
	TilingDirection entity.TilingDirection `yaml:"tiling_direction"`
	Children        []LayoutSpec           `yaml:"children"`
}

// LayoutSpec is one tiling child: either a window or a split holding
// further children. Siblings share their parent's space equally.
type LayoutSpec struct {
	Window *entity.NativeWindow `yaml:"window"`
	Split  *SplitSpec           `yaml:"split"`
}

// SplitSpec declares a split container.
type SplitSpec struct {
	TilingDirection entity.TilingDirection `yaml:"tiling_direction"`
	Children        []LayoutSpec           `yaml:"children"`
}

// Default is the layout used when no scenario file is given: one
// 1920x1080 monitor showing workspace "1".
func Default() *Scenario {
	return &Scenario{
		Name: "default",
		Monitors: []MonitorSpec{
			{
				Name:        "default",
				Rect:        entity.Rect{Width: 1920, Height: 1080},
				ScaleFactor: 1,
				Workspaces: []WorkspaceSpec{
					{Name: "1", TilingDirection: entity.TilingHorizontal},
				},
			},
		},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scenario document. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) applyDefaults() {
	for i := range s.Monitors {
		m := &s.Monitors[i]
		if m.ScaleFactor == 0 {
			m.ScaleFactor = 1
		}
		for j := range m.Workspaces {
			ws := &m.Workspaces[j]
			if ws.TilingDirection == "" {
				ws.TilingDirection = entity.TilingHorizontal
			}
			defaultSplitDirections(ws.Children, ws.TilingDirection)
		}
	}
}

// defaultSplitDirections gives splits without a direction the axis opposite
// to their parent's.
func defaultSplitDirections(children []LayoutSpec, parent entity.TilingDirection) {
	for _, child := range children {
		if child.Split == nil {
			continue
		}
		if child.Split.TilingDirection == "" {
			child.Split.TilingDirection = parent.Inverse()
		}
		defaultSplitDirections(child.Split.Children, child.Split.TilingDirection)
	}
}

// Validate performs basic sanity checks.
func (s *Scenario) Validate() error {
	if len(s.Monitors) == 0 {
		return fmt.Errorf("scenario must define at least one monitor")
	}

	var problems []error
	workspaces := make(map[string]bool)
	handles := make(map[entity.WindowHandle]bool)
	for i, m := range s.Monitors {
		if m.Name == "" {
			problems = append(problems, fmt.Errorf("monitors[%d]: name is required", i))
		}
		if m.Rect.Width <= 0 || m.Rect.Height <= 0 {
			problems = append(problems, fmt.Errorf("monitors[%d]: rect must have a positive size", i))
		}
		if m.ScaleFactor < 0 {
			problems = append(problems, fmt.Errorf("monitors[%d]: scale_factor must be positive", i))
		}
		if len(m.Workspaces) == 0 {
			problems = append(problems, fmt.Errorf("monitors[%d]: at least one workspace is required", i))
		}
		for j, ws := range m.Workspaces {
			if ws.Name == "" {
				problems = append(problems, fmt.Errorf("monitors[%d].workspaces[%d]: name is required", i, j))
			} else if workspaces[ws.Name] {
				problems = append(problems, fmt.Errorf("monitors[%d].workspaces[%d]: workspace %q is declared twice", i, j, ws.Name))
			}
			workspaces[ws.Name] = true
			if _, err := entity.ParseTilingDirection(string(ws.TilingDirection)); err != nil {
				problems = append(problems, fmt.Errorf("monitors[%d].workspaces[%d]: %w", i, j, err))
			}
			path := fmt.Sprintf("monitors[%d].workspaces[%d].children", i, j)
			problems = append(problems, validateLayout(path, ws.Children, handles)...)
		}
	}
	for i, e := range s.Events {
		if err := e.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("events[%d]: %w", i, err))
		}
	}
	return errors.Join(problems...)
}

func validateLayout(path string, children []LayoutSpec, handles map[entity.WindowHandle]bool) []error {
	var problems []error
	for k, child := range children {
		at := fmt.Sprintf("%s[%d]", path, k)
		switch {
		case child.Window != nil && child.Split != nil:
			problems = append(problems, fmt.Errorf("%s: window and split are mutually exclusive", at))
		case child.Window != nil:
			switch handle := child.Window.Handle; {
			case handle == 0:
				problems = append(problems, fmt.Errorf("%s: window handle is required", at))
			case handles[handle]:
				problems = append(problems, fmt.Errorf("%s: window handle %d is declared twice", at, handle))
			default:
				handles[handle] = true
			}
		case child.Split != nil:
			if _, err := entity.ParseTilingDirection(string(child.Split.TilingDirection)); err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", at, err))
			}
			if len(child.Split.Children) == 0 {
				problems = append(problems, fmt.Errorf("%s: split needs at least one child", at))
			}
			problems = append(problems, validateLayout(at+".split.children", child.Split.Children, handles)...)
		default:
			problems = append(problems, fmt.Errorf("%s: one of window or split is required", at))
		}
	}
	return problems
}

// Build creates the initial window manager state: a root holding the
// declared monitors and workspaces with their starting layouts.
func (s *Scenario) Build() (*entity.WmState, error) {
	return s.BuildWith(entity.NewTree())
}

// BuildWith populates tree, which must be empty.
func (s *Scenario) BuildWith(tree *entity.Tree) (*entity.WmState, error) {
	for _, m := range s.Monitors {
		monitor, err := tree.AddMonitor(m.Name, m.Rect, m.ScaleFactor)
		if err != nil {
			return nil, fmt.Errorf("add monitor %q: %w", m.Name, err)
		}
		for _, ws := range m.Workspaces {
			workspace, err := tree.AddWorkspace(monitor.ID, ws.Name, ws.TilingDirection)
			if err != nil {
				return nil, fmt.Errorf("add workspace %q: %w", ws.Name, err)
			}
			if err := addLayout(tree, workspace.ID, ws.Children); err != nil {
				return nil, fmt.Errorf("workspace %q layout: %w", ws.Name, err)
			}
		}
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return entity.NewWmState(tree), nil
}

func addLayout(tree *entity.Tree, parentID entity.ContainerID, children []LayoutSpec) error {
	share := 1 / float64(max(len(children), 1))
	for _, child := range children {
		if child.Window != nil {
			if _, err := tree.AddTilingWindow(parentID, -1, *child.Window, share); err != nil {
				return err
			}
			continue
		}
		split, err := tree.AddSplit(parentID, -1, child.Split.TilingDirection, share)
		if err != nil {
			return err
		}
		if err := addLayout(tree, split.ID, child.Split.Children); err != nil {
			return err
		}
	}
	return nil
}
