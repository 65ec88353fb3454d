package entity

import (
	"slices"
)

// Tree is an arena of containers addressed by ContainerID. Children and
// parents refer to each other by identifier only, so detaching a node is a
// matter of clearing those fields. Tree is not safe for concurrent use;
// commands run one at a time.
type Tree struct {
	nodes  map[ContainerID]*Container
	rootID ContainerID
	newID  func() ContainerID
}

// NewTree creates a tree holding a single root container.
func NewTree() *Tree {
	return NewTreeWithIDs(NewContainerID)
}

// NewTreeWithIDs creates a tree that draws identifiers from gen.
func NewTreeWithIDs(gen func() ContainerID) *Tree {
	t := &Tree{
		nodes: make(map[ContainerID]*Container),
		newID: gen,
	}
	root := t.create(KindRoot)
	t.rootID = root.ID
	return t
}

// Root returns the root container.
func (t *Tree) Root() *Container {
	return t.nodes[t.rootID]
}

// Get returns the container with the given identifier.
func (t *Tree) Get(id ContainerID) (*Container, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// Len returns the number of containers in the arena, detached ones included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) lookup(op string, id ContainerID) (*Container, error) {
	c, ok := t.nodes[id]
	if !ok {
		return nil, notFoundErr(op, id)
	}
	return c, nil
}

func (t *Tree) create(kind ContainerKind) *Container {
	c := &Container{ID: t.newID(), Kind: kind}
	t.nodes[c.ID] = c
	return c
}

// NewMonitor creates a detached monitor.
func (t *Tree) NewMonitor(name string, rect Rect, scaleFactor float64) *Container {
	c := t.create(KindMonitor)
	c.Name = name
	c.Rect = rect
	c.ScaleFactor = scaleFactor
	if c.ScaleFactor <= 0 {
		c.ScaleFactor = 1
	}
	return c
}

// NewWorkspace creates a detached workspace.
func (t *Tree) NewWorkspace(name string, dir TilingDirection) *Container {
	c := t.create(KindWorkspace)
	c.Name = name
	c.TilingDirection = dir
	return c
}

// NewSplit creates a detached split container.
func (t *Tree) NewSplit(dir TilingDirection, tilingSize float64) *Container {
	c := t.create(KindSplit)
	c.TilingDirection = dir
	c.TilingSize = tilingSize
	return c
}

// NewTilingWindow creates a detached tiling window.
func (t *Tree) NewTilingWindow(native NativeWindow, tilingSize float64) *Container {
	c := t.create(KindTilingWindow)
	c.Native = native
	c.State = WindowStateTiling
	c.TilingSize = tilingSize
	return c
}

// NewNonTilingWindow creates a detached floating, fullscreen or minimized window.
func (t *Tree) NewNonTilingWindow(native NativeWindow, state WindowState, rect Rect) *Container {
	c := t.create(KindNonTilingWindow)
	c.Native = native
	c.State = state
	c.Rect = rect
	return c
}

// AddMonitor creates a monitor and appends it to the root.
func (t *Tree) AddMonitor(name string, rect Rect, scaleFactor float64) (*Container, error) {
	c := t.NewMonitor(name, rect, scaleFactor)
	return c, t.attachNew(c, t.rootID, -1)
}

// AddWorkspace creates a workspace and appends it to a monitor.
func (t *Tree) AddWorkspace(monitorID ContainerID, name string, dir TilingDirection) (*Container, error) {
	c := t.NewWorkspace(name, dir)
	return c, t.attachNew(c, monitorID, -1)
}

// AddSplit creates a split at index under a workspace or split. A negative
// index appends.
func (t *Tree) AddSplit(parentID ContainerID, index int, dir TilingDirection, tilingSize float64) (*Container, error) {
	c := t.NewSplit(dir, tilingSize)
	return c, t.attachNew(c, parentID, index)
}

// AddTilingWindow creates a tiling window at index under a workspace or
// split. A negative index appends.
func (t *Tree) AddTilingWindow(parentID ContainerID, index int, native NativeWindow, tilingSize float64) (*Container, error) {
	c := t.NewTilingWindow(native, tilingSize)
	return c, t.attachNew(c, parentID, index)
}

// AddNonTilingWindow creates a non-tiling window and appends it to a workspace.
func (t *Tree) AddNonTilingWindow(workspaceID ContainerID, native NativeWindow, state WindowState, rect Rect) (*Container, error) {
	c := t.NewNonTilingWindow(native, state, rect)
	return c, t.attachNew(c, workspaceID, -1)
}

func (t *Tree) attachNew(c *Container, parentID ContainerID, index int) error {
	if index < 0 {
		if parent, ok := t.nodes[parentID]; ok {
			index = len(parent.Children)
		}
	}
	if err := t.Attach(c.ID, parentID, index); err != nil {
		delete(t.nodes, c.ID)
		return err
	}
	return nil
}

func canParent(parent, child ContainerKind) bool {
	switch child {
	case KindMonitor:
		return parent == KindRoot
	case KindWorkspace:
		return parent == KindMonitor
	case KindSplit, KindTilingWindow:
		return parent == KindWorkspace || parent == KindSplit
	case KindNonTilingWindow:
		return parent == KindWorkspace
	default:
		return false
	}
}

// Attach inserts a detached container into parent's children at index
// (clamped) and appends it to the end of the parent's focus order.
func (t *Tree) Attach(childID, parentID ContainerID, index int) error {
	const op = "attach"

	child, err := t.lookup(op, childID)
	if err != nil {
		return err
	}
	parent, err := t.lookup(op, parentID)
	if err != nil {
		return err
	}
	if !child.IsDetached() {
		return invariantErr(op, childID, "container already has a parent")
	}
	if !canParent(parent.Kind, child.Kind) {
		return invariantErr(op, childID, child.Kind.String()+" cannot be a child of "+parent.Kind.String())
	}

	index = min(max(index, 0), len(parent.Children))
	parent.Children = slices.Insert(parent.Children, index, childID)
	parent.FocusOrder = append(parent.FocusOrder, childID)
	child.Parent = parentID
	return nil
}

// Detach removes a container from its parent's children and focus order.
// Its own subtree is left intact.
func (t *Tree) Detach(id ContainerID) error {
	const op = "detach"

	c, err := t.lookup(op, id)
	if err != nil {
		return err
	}
	if c.IsRoot() {
		return invariantErr(op, id, "root cannot be detached")
	}
	if c.Parent == "" {
		return nil
	}
	parent, err := t.lookup(op, c.Parent)
	if err != nil {
		return invariantErr(op, id, "parent does not exist")
	}

	parent.Children = slices.DeleteFunc(parent.Children, func(cid ContainerID) bool { return cid == id })
	parent.FocusOrder = slices.DeleteFunc(parent.FocusOrder, func(cid ContainerID) bool { return cid == id })
	c.Parent = ""
	return nil
}

// Destroy detaches a container and removes it and its descendants from the arena.
func (t *Tree) Destroy(id ContainerID) error {
	c, err := t.lookup("destroy", id)
	if err != nil {
		return err
	}
	if c.IsRoot() {
		return invariantErr("destroy", id, "root cannot be destroyed")
	}
	if err := t.Detach(id); err != nil {
		return err
	}
	t.destroySubtree(c)
	return nil
}

func (t *Tree) destroySubtree(c *Container) {
	for _, childID := range c.Children {
		if child, ok := t.nodes[childID]; ok {
			child.Parent = ""
			t.destroySubtree(child)
		}
	}
	c.Children = nil
	c.FocusOrder = nil
	delete(t.nodes, c.ID)
}

// Index returns the position of a container within its parent's children.
func (t *Tree) Index(id ContainerID) (int, bool) {
	c, ok := t.nodes[id]
	if !ok || c.Parent == "" {
		return 0, false
	}
	parent, ok := t.nodes[c.Parent]
	if !ok {
		return 0, false
	}
	i := slices.Index(parent.Children, id)
	return i, i >= 0
}

// FocusIndex returns the position of a container within its parent's focus order.
func (t *Tree) FocusIndex(id ContainerID) (int, bool) {
	c, ok := t.nodes[id]
	if !ok || c.Parent == "" {
		return 0, false
	}
	parent, ok := t.nodes[c.Parent]
	if !ok {
		return 0, false
	}
	i := slices.Index(parent.FocusOrder, id)
	return i, i >= 0
}

// SetFocusedDescendant moves id to the front of its parent's focus order and
// repeats for every ancestor up to and including end. An empty end walks
// up to the root.
func (t *Tree) SetFocusedDescendant(id, end ContainerID) error {
	target, err := t.lookup("set focused descendant", id)
	if err != nil {
		return err
	}

	for target.Parent != "" {
		parent, ok := t.nodes[target.Parent]
		if !ok {
			return invariantErr("set focused descendant", target.ID, "parent does not exist")
		}
		ShiftToIndex(&parent.FocusOrder, 0, target.ID)
		if parent.ID == end {
			break
		}
		target = parent
	}
	return nil
}

// FlattenSplit removes a split and moves its children into the split's
// parent at the split's position. Tiling children are rescaled by the
// split's tiling size so they keep their absolute share of the screen.
// The split ends fully detached and empty.
func (t *Tree) FlattenSplit(splitID ContainerID) error {
	const op = "flatten split"

	split, err := t.lookup(op, splitID)
	if err != nil {
		return err
	}
	if !split.IsSplit() {
		return invariantErr(op, splitID, "container is not a split")
	}
	if split.Parent == "" {
		return invariantErr(op, splitID, "split has no parent")
	}
	parent, err := t.lookup(op, split.Parent)
	if err != nil {
		return invariantErr(op, splitID, "parent does not exist")
	}

	index, ok := t.Index(splitID)
	if !ok {
		return invariantErr(op, splitID, "split missing from parent's children")
	}
	focusIndex, ok := t.FocusIndex(splitID)
	if !ok {
		return invariantErr(op, splitID, "split missing from parent's focus order")
	}

	children := slices.Clone(split.Children)
	focusOrder := slices.Clone(split.FocusOrder)

	nodes := make([]*Container, 0, len(children))
	for _, childID := range children {
		child, ok := t.nodes[childID]
		if !ok {
			return invariantErr(op, childID, "child does not exist")
		}
		nodes = append(nodes, child)
	}

	for _, child := range nodes {
		child.Parent = parent.ID
		if tiling, ok := child.AsTilingContainer(); ok {
			tiling.TilingSize *= split.TilingSize
		}
	}

	parent.Children = slices.Insert(parent.Children, index, children...)
	parent.FocusOrder = slices.Insert(parent.FocusOrder, focusIndex, focusOrder...)

	parent.Children = slices.DeleteFunc(parent.Children, func(id ContainerID) bool { return id == splitID })
	parent.FocusOrder = slices.DeleteFunc(parent.FocusOrder, func(id ContainerID) bool { return id == splitID })

	split.Parent = ""
	split.Children = nil
	split.FocusOrder = nil
	return nil
}

// WrapInSplit replaces a tiling container with a new split on the given axis
// and moves the container inside it. The split takes over the container's
// tiling size and its positions in the parent's children and focus order;
// the wrapped container fills the split.
func (t *Tree) WrapInSplit(id ContainerID, dir TilingDirection) (*Container, error) {
	const op = "wrap in split"

	c, err := t.lookup(op, id)
	if err != nil {
		return nil, err
	}
	tiling, ok := c.AsTilingContainer()
	if !ok {
		return nil, invariantErr(op, id, c.Kind.String()+" is not a tiling container")
	}
	if c.Parent == "" {
		return nil, invariantErr(op, id, "container has no parent")
	}
	parent, err := t.lookup(op, c.Parent)
	if err != nil {
		return nil, invariantErr(op, id, "parent does not exist")
	}

	index, ok := t.Index(id)
	if !ok {
		return nil, invariantErr(op, id, "container missing from parent's children")
	}
	focusIndex, ok := t.FocusIndex(id)
	if !ok {
		return nil, invariantErr(op, id, "container missing from parent's focus order")
	}

	split := t.NewSplit(dir, tiling.TilingSize)
	split.Parent = parent.ID
	split.Children = []ContainerID{id}
	split.FocusOrder = []ContainerID{id}

	parent.Children[index] = split.ID
	parent.FocusOrder[focusIndex] = split.ID
	c.Parent = split.ID
	tiling.TilingSize = 1
	return split, nil
}
