package entity

import (
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/value"
)

// Gaps are the spacing rules applied when computing tiling rects.
type Gaps struct {
	Inner value.LengthValue
	Outer value.LengthValue
}

// ToRect computes the screen rectangle of a container. The root has no
// position and yields ErrUnsupportedOperation.
func (t *Tree) ToRect(id ContainerID, gaps Gaps) (Rect, error) {
	const op = "to rect"

	c, err := t.lookup(op, id)
	if err != nil {
		return Rect{}, err
	}

	switch c.Kind {
	case KindRoot:
		return Rect{}, fmt.Errorf("root container does not have a position: %w", ErrUnsupportedOperation)

	case KindMonitor:
		return c.Rect, nil

	case KindWorkspace:
		monitor, ok := t.Monitor(id)
		if !ok {
			return Rect{}, invariantErr(op, id, "workspace has no monitor")
		}
		dx := gaps.Outer.ToScaledPx(monitor.Rect.Width, monitor.ScaleFactor)
		dy := gaps.Outer.ToScaledPx(monitor.Rect.Height, monitor.ScaleFactor)
		return monitor.Rect.Inset(dx, dy), nil

	case KindNonTilingWindow:
		if c.State == WindowStateFullscreen {
			monitor, ok := t.Monitor(id)
			if !ok {
				return Rect{}, invariantErr(op, id, "window has no monitor")
			}
			return monitor.Rect, nil
		}
		return c.Rect, nil

	default:
		return t.tilingRect(id, gaps)
	}
}

func (t *Tree) tilingRect(id ContainerID, gaps Gaps) (Rect, error) {
	const op = "to rect"

	parent, ok := t.Parent(id)
	if !ok {
		return Rect{}, invariantErr(op, id, "tiling container has no parent")
	}
	direction, ok := parent.AsDirectionContainer()
	if !ok {
		return Rect{}, invariantErr(op, id, "parent is not a direction container")
	}
	monitor, ok := t.Monitor(id)
	if !ok {
		return Rect{}, invariantErr(op, id, "container has no monitor")
	}

	parentRect, err := t.ToRect(parent.ID, gaps)
	if err != nil {
		return Rect{}, err
	}

	var siblings []*Container
	position := -1
	for child := range t.TilingChildren(parent.ID) {
		if child.ID == id {
			position = len(siblings)
		}
		siblings = append(siblings, child)
	}
	if position < 0 {
		return Rect{}, invariantErr(op, id, "container missing from parent's tiling children")
	}

	horizontal := direction.TilingDirection == TilingHorizontal
	total := parentRect.Height
	if horizontal {
		total = parentRect.Width
	}

	gap := gaps.Inner.ToScaledPx(total, monitor.ScaleFactor)
	available := max(total-gap*(len(siblings)-1), 0)

	offset := 0
	for _, sibling := range siblings[:position] {
		offset += int(sibling.TilingSize*float64(available)) + gap
	}
	length := int(siblings[position].TilingSize * float64(available))

	if horizontal {
		return Rect{X: parentRect.X + offset, Y: parentRect.Y, Width: length, Height: parentRect.Height}, nil
	}
	return Rect{X: parentRect.X, Y: parentRect.Y + offset, Width: parentRect.Width, Height: length}, nil
}
