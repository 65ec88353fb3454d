// Package native holds window system adapters. Recorder is the dry-run
// adapter: it performs no system calls and keeps what it was asked to do.
package native

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// CallKind names a recorded window system call.
type CallKind string

const (
	CallSetForeground     CallKind = "set_foreground"
	CallResetForeground   CallKind = "reset_foreground"
	CallSetCursorPosition CallKind = "set_cursor_position"
	CallApplyPlacement    CallKind = "apply_placement"
)

// Call is one recorded request.
type Call struct {
	Kind       CallKind               `json:"kind" yaml:"kind"`
	Window     *entity.NativeWindow   `json:"window,omitempty" yaml:"window,omitempty"`
	X          int                    `json:"x,omitempty" yaml:"x,omitempty"`
	Y          int                    `json:"y,omitempty" yaml:"y,omitempty"`
	Placements []port.WindowPlacement `json:"placements,omitempty" yaml:"placements,omitempty"`
}

// Recorder implements port.NativeWindowSystem without touching the OS.
type Recorder struct {
	mu         sync.Mutex
	calls      []Call
	placements map[entity.WindowHandle]port.WindowPlacement
	foreground entity.WindowHandle
	cursor     [2]int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{placements: make(map[entity.WindowHandle]port.WindowPlacement)}
}

var _ port.NativeWindowSystem = (*Recorder)(nil)

func (r *Recorder) SetForeground(ctx context.Context, window entity.NativeWindow) error {
	logging.FromContext(ctx).Debug().
		Uint64("handle", uint64(window.Handle)).
		Str("title", window.Title).
		Msg("dry-run: set foreground")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.foreground = window.Handle
	r.calls = append(r.calls, Call{Kind: CallSetForeground, Window: &window})
	return nil
}

func (r *Recorder) ResetForeground(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("dry-run: reset foreground")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.foreground = 0
	r.calls = append(r.calls, Call{Kind: CallResetForeground})
	return nil
}

func (r *Recorder) SetCursorPosition(ctx context.Context, x, y int) error {
	logging.FromContext(ctx).Debug().Int("x", x).Int("y", y).Msg("dry-run: move cursor")

	r.mu.Lock()
	defer r.mu.Unlock()
	r.cursor = [2]int{x, y}
	r.calls = append(r.calls, Call{Kind: CallSetCursorPosition, X: x, Y: y})
	return nil
}

func (r *Recorder) ApplyPlacement(ctx context.Context, placements []port.WindowPlacement) error {
	logging.FromContext(ctx).Debug().Int("windows", len(placements)).Msg("dry-run: apply placement")

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range placements {
		r.placements[p.Window.Handle] = p
	}
	r.calls = append(r.calls, Call{Kind: CallApplyPlacement, Placements: slices.Clone(placements)})
	return nil
}

// Calls returns every recorded call in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Placements returns the latest placement of every window, ordered by
// handle.
func (r *Recorder) Placements() []port.WindowPlacement {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := slices.Sorted(maps.Keys(r.placements))
	out := make([]port.WindowPlacement, 0, len(handles))
	for _, h := range handles {
		out = append(out, r.placements[h])
	}
	return out
}

// Forget drops the stored placement of a window that no longer exists.
func (r *Recorder) Forget(handle entity.WindowHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.placements, handle)
}

// Foreground returns the handle last given focus, or 0 when focus was
// reset.
func (r *Recorder) Foreground() entity.WindowHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.foreground
}

// Cursor returns the last cursor position.
func (r *Recorder) Cursor() (x, y int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cursor[0], r.cursor[1]
}

// CountByKind returns how often each call kind was recorded.
func (r *Recorder) CountByKind() map[CallKind]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[CallKind]int)
	for _, c := range r.calls {
		counts[c.Kind]++
	}
	return counts
}
