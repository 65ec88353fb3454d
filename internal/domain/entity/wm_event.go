package entity

// BindingMode is an active keybinding mode.
type BindingMode struct {
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
}

// WmEventType names a domain event emitted after a flush.
type WmEventType string

const (
	EventBindingModesChanged    WmEventType = "binding_modes_changed"
	EventFocusChanged           WmEventType = "focus_changed"
	EventWindowManaged          WmEventType = "window_managed"
	EventWindowUnmanaged        WmEventType = "window_unmanaged"
	EventWindowStateChanged     WmEventType = "window_state_changed"
	EventTilingDirectionChanged WmEventType = "tiling_direction_changed"
)

// WmEvent is a domain event published to subscribers. Only the fields
// relevant to Type are set.
type WmEvent struct {
	Type            WmEventType     `json:"type" yaml:"type"`
	ContainerID     ContainerID     `json:"container_id,omitempty" yaml:"container_id,omitempty"`
	Container       *ContainerDTO   `json:"container,omitempty" yaml:"container,omitempty"`
	Handle          WindowHandle    `json:"handle,omitempty" yaml:"handle,omitempty"`
	State           WindowState     `json:"state,omitempty" yaml:"state,omitempty"`
	TilingDirection TilingDirection `json:"tiling_direction,omitempty" yaml:"tiling_direction,omitempty"`
	BindingModes    []BindingMode   `json:"binding_modes,omitempty" yaml:"binding_modes,omitempty"`
}

// BindingModesChanged carries the full list of active binding modes.
func BindingModesChanged(modes []BindingMode) WmEvent {
	return WmEvent{
		Type:         EventBindingModesChanged,
		BindingModes: append([]BindingMode{}, modes...),
	}
}

// FocusChanged reports the newly focused container.
func FocusChanged(dto ContainerDTO) WmEvent {
	return WmEvent{Type: EventFocusChanged, ContainerID: dto.ID, Container: &dto}
}

// WindowManaged reports a newly tracked window.
func WindowManaged(dto ContainerDTO) WmEvent {
	return WmEvent{Type: EventWindowManaged, ContainerID: dto.ID, Container: &dto, Handle: dto.Handle}
}

// WindowUnmanaged reports a window removed from the tree.
func WindowUnmanaged(id ContainerID, handle WindowHandle) WmEvent {
	return WmEvent{Type: EventWindowUnmanaged, ContainerID: id, Handle: handle}
}

// WindowStateChanged reports a transition of the window-state machine.
func WindowStateChanged(id ContainerID, handle WindowHandle, state WindowState) WmEvent {
	return WmEvent{Type: EventWindowStateChanged, ContainerID: id, Handle: handle, State: state}
}

// TilingDirectionChanged reports a direction container whose axis flipped.
func TilingDirectionChanged(id ContainerID, dir TilingDirection) WmEvent {
	return WmEvent{Type: EventTilingDirectionChanged, ContainerID: id, TilingDirection: dir}
}
