package entity

import "math"

// WmState is the manager state threaded through every command: the tree,
// the active binding modes and the effects awaiting a flush.
type WmState struct {
	Tree         *Tree
	BindingModes []BindingMode
	PendingSync  PendingSync
}

// NewWmState wraps a tree in a fresh manager state.
func NewWmState(tree *Tree) *WmState {
	return &WmState{Tree: tree}
}

// WindowFromNative finds the live window container for a native handle.
func (s *WmState) WindowFromNative(handle WindowHandle) (WindowContainer, bool) {
	for c := range s.Tree.Descendants(s.Tree.Root().ID) {
		if w, ok := c.AsWindow(); ok && w.Native.Handle == handle {
			return w, true
		}
	}
	return WindowContainer{}, false
}

// FocusedContainer returns the container holding focus, if any.
func (s *WmState) FocusedContainer() (*Container, bool) {
	return s.Tree.FocusedContainer()
}

// MonitorInDirection returns the nearest monitor whose center lies in dir
// from the origin monitor. Monitors that overlap the origin on the
// perpendicular axis are preferred.
func (s *WmState) MonitorInDirection(originID ContainerID, dir Direction) (*Container, bool, error) {
	origin, ok := s.Tree.Get(originID)
	if !ok || !origin.IsMonitor() {
		return nil, false, invariantErr("monitor in direction", originID, "not a monitor")
	}

	// Candidates without perpendicular overlap are only chosen when no
	// overlapping one exists.
	const noOverlapPenalty = 10_000_000

	ocx, ocy := origin.Rect.Center()
	var best *Container
	bestScore := math.MaxInt

	for _, monitor := range s.Tree.Monitors() {
		if monitor.ID == originID {
			continue
		}
		cx, cy := monitor.Rect.Center()
		dx, dy := cx-ocx, cy-ocy

		var inDirection, overlap bool
		var primary, perp int
		switch dir {
		case DirectionLeft:
			inDirection, primary, perp, overlap = dx < 0, abs(dx), abs(dy), origin.Rect.OverlapsVertically(monitor.Rect)
		case DirectionRight:
			inDirection, primary, perp, overlap = dx > 0, abs(dx), abs(dy), origin.Rect.OverlapsVertically(monitor.Rect)
		case DirectionUp:
			inDirection, primary, perp, overlap = dy < 0, abs(dy), abs(dx), origin.Rect.OverlapsHorizontally(monitor.Rect)
		case DirectionDown:
			inDirection, primary, perp, overlap = dy > 0, abs(dy), abs(dx), origin.Rect.OverlapsHorizontally(monitor.Rect)
		}
		if !inDirection {
			continue
		}

		score := primary*1000 + perp
		if !overlap {
			score += noOverlapPenalty
		}
		if score < bestScore {
			best, bestScore = monitor, score
		}
	}

	return best, best != nil, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
