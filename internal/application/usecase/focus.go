package usecase

import (
	"context"
	"fmt"
	"iter"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// FocusInDirection resolves the container that should receive focus when
// moving in dir from origin. On success the target becomes the focused
// descendant of every ancestor and a focus change plus cursor jump are
// queued. A nil container with a nil error means there is nothing to focus.
func (uc *ManageContainersUseCase) FocusInDirection(
	ctx context.Context,
	state *entity.WmState,
	originID entity.ContainerID,
	dir entity.Direction,
) (*entity.Container, error) {
	ctx = logging.WithContainerID(ctx, string(originID))
	log := logging.FromContext(ctx)

	origin, ok := state.Tree.Get(originID)
	if !ok {
		return nil, fmt.Errorf("focus in direction: %w: %s", entity.ErrContainerNotFound, originID)
	}

	var (
		target *entity.Container
		err    error
	)

	switch origin.Kind {
	case entity.KindTilingWindow:
		target, err = tilingFocusTarget(state.Tree, origin, dir)
		if err == nil && target == nil {
			target, err = workspaceFocusTarget(state, origin, dir)
		}
	case entity.KindNonTilingWindow:
		switch origin.State {
		case entity.WindowStateFloating:
			target = floatingFocusTarget(state.Tree, origin, dir)
		case entity.WindowStateFullscreen:
			target, err = workspaceFocusTarget(state, origin, dir)
		}
	case entity.KindWorkspace:
		target, err = workspaceFocusTarget(state, origin, dir)
	}
	if err != nil {
		return nil, err
	}

	if target == nil {
		log.Debug().
			Str("direction", string(dir)).
			Msg("no focus target in direction")
		return nil, nil
	}

	if err := state.Tree.SetFocusedDescendant(target.ID, ""); err != nil {
		return nil, err
	}
	state.PendingSync.QueueFocusChange().QueueCursorJump()

	log.Debug().
		Str("target_id", string(target.ID)).
		Str("direction", string(dir)).
		Msg("focus moved")

	return target, nil
}

// floatingFocusTarget cycles through floating siblings. Only horizontal
// movement is meaningful: Right takes the next floating sibling and wraps to
// the first, Left takes the previous one and wraps to the last.
func floatingFocusTarget(tree *entity.Tree, origin *entity.Container, dir entity.Direction) *entity.Container {
	var floating []*entity.Container
	for sibling := range tree.Siblings(origin.ID) {
		if sibling.IsFloatingWindow() {
			floating = append(floating, sibling)
		}
	}

	switch dir {
	case entity.DirectionRight:
		if next := first(tree.NextSiblings(origin.ID), (*entity.Container).IsFloatingWindow); next != nil {
			return next
		}
		if len(floating) > 0 {
			return floating[0]
		}
	case entity.DirectionLeft:
		if prev := first(tree.PrevSiblings(origin.ID), (*entity.Container).IsFloatingWindow); prev != nil {
			return prev
		}
		if len(floating) > 0 {
			return floating[len(floating)-1]
		}
	}
	return nil
}

// tilingFocusTarget walks up from origin to the workspace looking for an
// adjacent tiling container along dir's axis.
func tilingFocusTarget(tree *entity.Tree, origin *entity.Container, dir entity.Direction) (*entity.Container, error) {
	axis := entity.TilingDirectionFrom(dir)
	current := origin

	for !current.IsWorkspace() {
		parent, ok := tree.Parent(current.ID)
		if !ok {
			return nil, &entity.InvariantError{Op: "tiling focus target", ID: current.ID, Reason: "no direction container"}
		}
		container, ok := parent.AsDirectionContainer()
		if !ok {
			return nil, &entity.InvariantError{Op: "tiling focus target", ID: parent.ID, Reason: "no direction container"}
		}

		if container.TilingDirection != axis {
			current = parent
			continue
		}

		siblings := tree.NextSiblings(current.ID)
		if dir.TowardsStart() {
			siblings = tree.PrevSiblings(current.ID)
		}

		isTiling := func(c *entity.Container) bool {
			_, ok := c.AsTilingContainer()
			return ok
		}
		if sibling := first(siblings, isTiling); sibling != nil {
			if !sibling.IsSplit() {
				return sibling, nil
			}
			target, _ := tree.DescendantInDirection(sibling.ID, dir.Inverse())
			return target, nil
		}

		current = parent
	}

	return nil, nil
}

// workspaceFocusTarget descends into the workspace displayed on the monitor
// in dir. A fullscreen window that was last focused there wins outright;
// otherwise the edge nearest the origin is taken, or the workspace itself
// when it has no tiling descendants.
func workspaceFocusTarget(state *entity.WmState, origin *entity.Container, dir entity.Direction) (*entity.Container, error) {
	monitor, ok := state.Tree.Monitor(origin.ID)
	if !ok {
		return nil, &entity.InvariantError{Op: "workspace focus target", ID: origin.ID, Reason: "no monitor"}
	}

	targetMonitor, ok, err := state.MonitorInDirection(monitor.ID, dir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	workspace, ok := state.Tree.DisplayedWorkspace(targetMonitor.ID)
	if !ok {
		return nil, nil
	}

	if focused := front(state.Tree.DescendantFocusOrder(workspace.ID)); focused != nil && focused.IsFullscreenWindow() {
		return focused, nil
	}

	if target, ok := state.Tree.DescendantInDirection(workspace.ID, dir.Inverse()); ok {
		return target, nil
	}
	return workspace, nil
}

// FocusWorkspace focuses a workspace by name: its last focused window when
// it has one, otherwise the workspace itself.
func (uc *ManageContainersUseCase) FocusWorkspace(
	ctx context.Context,
	state *entity.WmState,
	name string,
) (*entity.Container, error) {
	var workspace *entity.Container
	for _, monitor := range state.Tree.Monitors() {
		for child := range state.Tree.Children(monitor.ID) {
			if child.IsWorkspace() && child.Name == name {
				workspace = child
			}
		}
	}
	if workspace == nil {
		return nil, fmt.Errorf("focus workspace %q: %w", name, entity.ErrContainerNotFound)
	}

	target := workspace
	if window := first(state.Tree.DescendantFocusOrder(workspace.ID), (*entity.Container).IsWindow); window != nil {
		target = window
	}

	if err := state.Tree.SetFocusedDescendant(target.ID, ""); err != nil {
		return nil, err
	}
	monitor, _ := state.Tree.Monitor(workspace.ID)
	state.PendingSync.QueueFocusChange().QueueCursorJump().QueueRedraw(monitor.ID)

	logging.FromContext(ctx).Debug().
		Str("workspace", name).
		Str("target_id", string(target.ID)).
		Msg("focused workspace")

	return target, nil
}

func first(seq iter.Seq[*entity.Container], match func(*entity.Container) bool) *entity.Container {
	for c := range seq {
		if match(c) {
			return c
		}
	}
	return nil
}

func front(seq iter.Seq[*entity.Container]) *entity.Container {
	for c := range seq {
		return c
	}
	return nil
}
