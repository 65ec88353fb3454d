package entity

import (
	"errors"
	"slices"
)

// Validate checks the structural invariants of the tree: every reachable
// node is held by exactly the parent it points at, focus orders are
// permutations of children, and variants only nest where allowed.
// All violations are returned joined.
func (t *Tree) Validate() error {
	const op = "validate"

	var errs []error
	seen := make(map[ContainerID]bool, len(t.nodes))

	var visit func(c *Container)
	visit = func(c *Container) {
		if seen[c.ID] {
			errs = append(errs, invariantErr(op, c.ID, "container reachable twice"))
			return
		}
		seen[c.ID] = true

		if !isPermutation(c.Children, c.FocusOrder) {
			errs = append(errs, invariantErr(op, c.ID, "focus order is not a permutation of children"))
		}

		for _, childID := range c.Children {
			child, ok := t.nodes[childID]
			if !ok {
				errs = append(errs, invariantErr(op, childID, "child does not exist"))
				continue
			}
			if child.Parent != c.ID {
				errs = append(errs, invariantErr(op, childID, "parent reference does not match holder"))
			}
			if !canParent(c.Kind, child.Kind) {
				errs = append(errs, invariantErr(op, childID, child.Kind.String()+" under "+c.Kind.String()))
			}
			visit(child)
		}
	}
	visit(t.Root())

	// Detached subtrees may exist while a command moves them, but their
	// back-references must still resolve.
	for id, c := range t.nodes {
		if seen[id] || c.Parent == "" {
			continue
		}
		parent, ok := t.nodes[c.Parent]
		if !ok || !slices.Contains(parent.Children, id) {
			errs = append(errs, invariantErr(op, id, "parent reference to a container that does not hold it"))
		}
	}

	return errors.Join(errs...)
}

func isPermutation(children, focusOrder []ContainerID) bool {
	if len(children) != len(focusOrder) {
		return false
	}
	counts := make(map[ContainerID]int, len(children))
	for _, id := range children {
		counts[id]++
	}
	for _, id := range focusOrder {
		if counts[id] != 1 {
			return false
		}
		counts[id]--
	}
	return true
}
