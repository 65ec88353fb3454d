package entity

import "fmt"

// NativeEventType names an input to the window manager core.
type NativeEventType string

const (
	NativeWindowManaged      NativeEventType = "window_managed"
	NativeWindowFocused      NativeEventType = "window_focused"
	NativeWindowTitleChanged NativeEventType = "window_title_changed"
	NativeWindowDestroyed    NativeEventType = "window_destroyed"
	NativeCommand            NativeEventType = "command"
)

// NativeEvent is a window system notification or a user command fed to the
// core. Window identifies the native window for window events; for title
// changes it carries the new title. Command is set for command events.
type NativeEvent struct {
	Type    NativeEventType `json:"type" yaml:"type"`
	Window  NativeWindow    `json:"window,omitzero" yaml:"window,omitempty"`
	Command string          `json:"command,omitempty" yaml:"command,omitempty"`
}

// Validate checks that the fields required by the event type are present.
func (e NativeEvent) Validate() error {
	switch e.Type {
	case NativeWindowManaged, NativeWindowFocused, NativeWindowTitleChanged, NativeWindowDestroyed:
		if e.Window.Handle == 0 {
			return fmt.Errorf("%s event: window handle is required", e.Type)
		}
	case NativeCommand:
		if e.Command == "" {
			return fmt.Errorf("command event: command is required")
		}
	default:
		return fmt.Errorf("unknown native event type %q", e.Type)
	}
	return nil
}
