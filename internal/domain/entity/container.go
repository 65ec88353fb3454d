// Package entity contains the window manager's domain model: the container
// tree, its traversal, and the state threaded through commands.
// These are pure Go types with no infrastructure dependencies.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// ContainerID uniquely identifies a container for its whole lifetime.
type ContainerID string

// NewContainerID returns a random identifier.
func NewContainerID() ContainerID {
	return ContainerID(uuid.NewString())
}

// ContainerKind is the closed set of container variants.
type ContainerKind int

const (
	KindRoot ContainerKind = iota
	KindMonitor
	KindWorkspace
	KindSplit
	KindTilingWindow
	KindNonTilingWindow
)

func (k ContainerKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindMonitor:
		return "monitor"
	case KindWorkspace:
		return "workspace"
	case KindSplit:
		return "split"
	case KindTilingWindow:
		return "tiling_window"
	case KindNonTilingWindow:
		return "non_tiling_window"
	default:
		return "unknown"
	}
}

// WindowState is the window-state machine. Tiling windows are always
// WindowStateTiling; non-tiling windows hold one of the other three.
type WindowState string

const (
	WindowStateTiling     WindowState = "tiling"
	WindowStateFloating   WindowState = "floating"
	WindowStateFullscreen WindowState = "fullscreen"
	WindowStateMinimized  WindowState = "minimized"
)

// WindowHandle is the native window system's opaque handle.
type WindowHandle uint64

// NativeWindow describes the OS window behind a window container.
type NativeWindow struct {
	Handle      WindowHandle `json:"handle" yaml:"handle"`
	Title       string       `json:"title" yaml:"title"`
	ClassName   string       `json:"class_name" yaml:"class"`
	ProcessName string       `json:"process_name" yaml:"process"`
}

// Container is a node of the tree. Which fields are meaningful depends on
// Kind. Parent, Children and FocusOrder are owned by Tree and must only be
// changed through its methods.
type Container struct {
	ID         ContainerID
	Kind       ContainerKind
	Parent     ContainerID // empty for root and detached nodes
	Children   []ContainerID
	FocusOrder []ContainerID

	Name            string          // monitor device name or workspace name
	Rect            Rect            // monitor bounds, or placement of a non-tiling window
	ScaleFactor     float64         // monitors
	TilingDirection TilingDirection // workspaces and splits
	TilingSize      float64         // splits and tiling windows
	State           WindowState     // windows
	Native          NativeWindow    // windows
	DoneRules       []string        // run-once window rules already applied
}

func (c *Container) IsRoot() bool      { return c.Kind == KindRoot }
func (c *Container) IsMonitor() bool   { return c.Kind == KindMonitor }
func (c *Container) IsWorkspace() bool { return c.Kind == KindWorkspace }
func (c *Container) IsSplit() bool     { return c.Kind == KindSplit }

// IsWindow reports whether the container wraps a native window.
func (c *Container) IsWindow() bool {
	return c.Kind == KindTilingWindow || c.Kind == KindNonTilingWindow
}

// IsDetached reports whether a non-root container has no parent.
func (c *Container) IsDetached() bool {
	return c.Kind != KindRoot && c.Parent == ""
}

// HasChildren reports whether the container has any children.
func (c *Container) HasChildren() bool {
	return len(c.Children) > 0
}

// TilingContainer is a container participating in proportional layout.
type TilingContainer struct{ *Container }

// DirectionContainer is a container with a tiling axis.
type DirectionContainer struct{ *Container }

// WindowContainer is a container wrapping a native window.
type WindowContainer struct{ *Container }

// AsTilingContainer succeeds for splits and tiling windows.
func (c *Container) AsTilingContainer() (TilingContainer, bool) {
	if c == nil || (c.Kind != KindSplit && c.Kind != KindTilingWindow) {
		return TilingContainer{}, false
	}
	return TilingContainer{c}, true
}

// AsDirectionContainer succeeds for workspaces and splits.
func (c *Container) AsDirectionContainer() (DirectionContainer, bool) {
	if c == nil || (c.Kind != KindWorkspace && c.Kind != KindSplit) {
		return DirectionContainer{}, false
	}
	return DirectionContainer{c}, true
}

// AsWindow succeeds for tiling and non-tiling windows.
func (c *Container) AsWindow() (WindowContainer, bool) {
	if c == nil || !c.IsWindow() {
		return WindowContainer{}, false
	}
	return WindowContainer{c}, true
}

// IsTiling reports whether the window is laid out by its parent.
func (w WindowContainer) IsTiling() bool {
	return w.Kind == KindTilingWindow
}

// HasState reports whether the window is non-tiling and in the given state.
func (w WindowContainer) HasState(state WindowState) bool {
	return w.Kind == KindNonTilingWindow && w.State == state
}

// HasRunRule reports whether a run-once rule already applied to this window.
func (w WindowContainer) HasRunRule(name string) bool {
	return slices.Contains(w.DoneRules, name)
}

// MarkRuleDone records a run-once rule.
func (w WindowContainer) MarkRuleDone(name string) {
	if !w.HasRunRule(name) {
		w.DoneRules = append(w.DoneRules, name)
	}
}

// IsFloatingWindow reports whether c is a floating non-tiling window.
func (c *Container) IsFloatingWindow() bool {
	w, ok := c.AsWindow()
	return ok && w.HasState(WindowStateFloating)
}

// IsFullscreenWindow reports whether c is a fullscreen non-tiling window.
func (c *Container) IsFullscreenWindow() bool {
	w, ok := c.AsWindow()
	return ok && w.HasState(WindowStateFullscreen)
}
