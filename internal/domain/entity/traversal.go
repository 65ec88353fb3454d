package entity

import (
	"iter"
	"slices"
)

// Parent returns the parent of a container, if any.
func (t *Tree) Parent(id ContainerID) (*Container, bool) {
	c, ok := t.nodes[id]
	if !ok || c.Parent == "" {
		return nil, false
	}
	return t.Get(c.Parent)
}

// Children yields the children of a container in spatial order.
func (t *Tree) Children(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		c, ok := t.nodes[id]
		if !ok {
			return
		}
		for _, childID := range slices.Clone(c.Children) {
			if child, ok := t.nodes[childID]; ok && !yield(child) {
				return
			}
		}
	}
}

// TilingChildren yields the splits and tiling windows among the children.
func (t *Tree) TilingChildren(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		for child := range t.Children(id) {
			if _, ok := child.AsTilingContainer(); ok && !yield(child) {
				return
			}
		}
	}
}

// ChildFocusOrder yields the children in focus order, most recently focused first.
func (t *Tree) ChildFocusOrder(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		c, ok := t.nodes[id]
		if !ok {
			return
		}
		for _, childID := range slices.Clone(c.FocusOrder) {
			if child, ok := t.nodes[childID]; ok && !yield(child) {
				return
			}
		}
	}
}

// Siblings yields every other child of the parent in spatial order.
func (t *Tree) Siblings(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		parent, ok := t.Parent(id)
		if !ok {
			return
		}
		for child := range t.Children(parent.ID) {
			if child.ID != id && !yield(child) {
				return
			}
		}
	}
}

// PrevSiblings yields the siblings before a container, nearest first.
func (t *Tree) PrevSiblings(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		parent, ok := t.Parent(id)
		if !ok {
			return
		}
		index, ok := t.Index(id)
		if !ok {
			return
		}
		siblings := slices.Clone(parent.Children[:index])
		for _, siblingID := range slices.Backward(siblings) {
			if sibling, ok := t.nodes[siblingID]; ok && !yield(sibling) {
				return
			}
		}
	}
}

// NextSiblings yields the siblings after a container, nearest first.
func (t *Tree) NextSiblings(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		parent, ok := t.Parent(id)
		if !ok {
			return
		}
		index, ok := t.Index(id)
		if !ok {
			return
		}
		for _, siblingID := range slices.Clone(parent.Children[index+1:]) {
			if sibling, ok := t.nodes[siblingID]; ok && !yield(sibling) {
				return
			}
		}
	}
}

// Ancestors yields the parent, grandparent and so on up to the root.
func (t *Tree) Ancestors(id ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		current, ok := t.Parent(id)
		for ok {
			if !yield(current) {
				return
			}
			current, ok = t.Parent(current.ID)
		}
	}
}

// Descendants yields every descendant depth-first in spatial order.
func (t *Tree) Descendants(id ContainerID) iter.Seq[*Container] {
	return t.walk(id, func(c *Container) []ContainerID { return c.Children })
}

// DescendantFocusOrder yields every descendant depth-first, taking the front
// of each focus order first. The first value is the most recently focused
// child.
func (t *Tree) DescendantFocusOrder(id ContainerID) iter.Seq[*Container] {
	return t.walk(id, func(c *Container) []ContainerID { return c.FocusOrder })
}

func (t *Tree) walk(id ContainerID, order func(*Container) []ContainerID) iter.Seq[*Container] {
	return func(yield func(*Container) bool) {
		start, ok := t.nodes[id]
		if !ok {
			return
		}

		stack := slices.Clone(order(start))
		slices.Reverse(stack)
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			c, ok := t.nodes[top]
			if !ok {
				continue
			}
			if !yield(c) {
				return
			}

			next := order(c)
			for i := len(next) - 1; i >= 0; i-- {
				stack = append(stack, next[i])
			}
		}
	}
}

// Monitor returns the monitor a container belongs to, or the container itself
// when it is a monitor.
func (t *Tree) Monitor(id ContainerID) (*Container, bool) {
	return t.closest(id, KindMonitor)
}

// Workspace returns the workspace a container belongs to, or the container
// itself when it is a workspace.
func (t *Tree) Workspace(id ContainerID) (*Container, bool) {
	return t.closest(id, KindWorkspace)
}

func (t *Tree) closest(id ContainerID, kind ContainerKind) (*Container, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	if c.Kind == kind {
		return c, true
	}
	for ancestor := range t.Ancestors(id) {
		if ancestor.Kind == kind {
			return ancestor, true
		}
	}
	return nil, false
}

// Monitors returns the monitors attached to the root in order.
func (t *Tree) Monitors() []*Container {
	return slices.Collect(t.Children(t.rootID))
}

// Windows returns every window container attached to the tree.
func (t *Tree) Windows() []*Container {
	var windows []*Container
	for c := range t.Descendants(t.rootID) {
		if c.IsWindow() {
			windows = append(windows, c)
		}
	}
	return windows
}

// DisplayedWorkspace returns the workspace shown on a monitor: the front of
// the monitor's focus order.
func (t *Tree) DisplayedWorkspace(monitorID ContainerID) (*Container, bool) {
	for child := range t.ChildFocusOrder(monitorID) {
		if child.IsWorkspace() {
			return child, true
		}
	}
	return nil, false
}

// FocusedContainer walks the focus order from the root to the deepest
// most-recently-focused container.
func (t *Tree) FocusedContainer() (*Container, bool) {
	current := t.Root()
	for len(current.FocusOrder) > 0 {
		next, ok := t.nodes[current.FocusOrder[0]]
		if !ok {
			break
		}
		current = next
	}
	if current.IsRoot() {
		return nil, false
	}
	return current, true
}

// ChildInDirection returns the tiling child of a direction container that
// lies furthest toward dir. When the container's axis differs from dir's
// axis, the most recently focused tiling child is returned instead.
func (t *Tree) ChildInDirection(id ContainerID, dir Direction) (*Container, bool) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, false
	}
	container, ok := c.AsDirectionContainer()
	if !ok {
		return nil, false
	}

	if container.TilingDirection != TilingDirectionFrom(dir) {
		for child := range t.ChildFocusOrder(id) {
			if _, ok := child.AsTilingContainer(); ok {
				return child, true
			}
		}
		return nil, false
	}

	tiling := slices.Collect(t.TilingChildren(id))
	if len(tiling) == 0 {
		return nil, false
	}
	if dir.TowardsStart() {
		return tiling[0], true
	}
	return tiling[len(tiling)-1], true
}

// DescendantInDirection descends through splits to the deepest tiling
// container furthest toward dir.
func (t *Tree) DescendantInDirection(id ContainerID, dir Direction) (*Container, bool) {
	child, ok := t.ChildInDirection(id, dir)
	if !ok {
		return nil, false
	}
	if child.IsSplit() {
		return t.DescendantInDirection(child.ID, dir)
	}
	return child, true
}
