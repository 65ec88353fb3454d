package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// WindowPlacement is the position and visibility a flush assigns to a window.
type WindowPlacement struct {
	Window  entity.NativeWindow `json:"window" yaml:"window"`
	Rect    entity.Rect         `json:"rect" yaml:"rect"`
	State   entity.WindowState  `json:"state" yaml:"state"`
	Visible bool                `json:"visible" yaml:"visible"`
}

// NativeWindowSystem performs the window system calls of a flush. It is the
// only place where blocking syscalls happen.
type NativeWindowSystem interface {
	// SetForeground gives input focus to a window.
	SetForeground(ctx context.Context, window entity.NativeWindow) error
	// ResetForeground removes focus from every window, e.g. when an empty
	// workspace is focused.
	ResetForeground(ctx context.Context) error
	SetCursorPosition(ctx context.Context, x, y int) error
	ApplyPlacement(ctx context.Context, placements []WindowPlacement) error
}
