package entity

import "slices"

// PendingSync accumulates the side effects of a command batch. Nothing here
// touches the native window system; a single flush applies it all.
type PendingSync struct {
	focusChange bool
	cursorJump  bool
	redraw      []ContainerID
	events      []WmEvent
}

// QueueFocusChange schedules a native focus update.
func (p *PendingSync) QueueFocusChange() *PendingSync {
	p.focusChange = true
	return p
}

// QueueCursorJump schedules moving the cursor to the focused container.
func (p *PendingSync) QueueCursorJump() *PendingSync {
	p.cursorJump = true
	return p
}

// QueueRedraw schedules placement of the given containers' windows.
func (p *PendingSync) QueueRedraw(ids ...ContainerID) *PendingSync {
	for _, id := range ids {
		if !slices.Contains(p.redraw, id) {
			p.redraw = append(p.redraw, id)
		}
	}
	return p
}

// QueueEvent schedules a domain event for publication after the flush.
func (p *PendingSync) QueueEvent(e WmEvent) *PendingSync {
	p.events = append(p.events, e)
	return p
}

func (p *PendingSync) NeedsFocusChange() bool { return p.focusChange }
func (p *PendingSync) NeedsCursorJump() bool  { return p.cursorJump }

// Redraws returns the containers queued for redraw in queue order.
func (p *PendingSync) Redraws() []ContainerID {
	return slices.Clone(p.redraw)
}

// Events returns the queued events in queue order.
func (p *PendingSync) Events() []WmEvent {
	return slices.Clone(p.events)
}

// IsEmpty reports whether nothing has been queued.
func (p *PendingSync) IsEmpty() bool {
	return !p.focusChange && !p.cursorJump && len(p.redraw) == 0 && len(p.events) == 0
}

// Reset clears every queued effect.
func (p *PendingSync) Reset() {
	*p = PendingSync{}
}
