package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// ManageWindow starts tracking a native window as a tiling window placed
// after the focused tiling container of the focused workspace.
func (uc *ManageContainersUseCase) ManageWindow(
	ctx context.Context,
	state *entity.WmState,
	native entity.NativeWindow,
) (entity.WindowContainer, error) {
	if existing, ok := state.WindowFromNative(native.Handle); ok {
		return existing, nil
	}

	parentID, index, err := tilingInsertionTarget(state)
	if err != nil {
		return entity.WindowContainer{}, err
	}

	c := state.Tree.NewTilingWindow(native, 1)
	if err := attachTiling(state.Tree, c, parentID, index); err != nil {
		return entity.WindowContainer{}, err
	}

	dto, err := state.Tree.Snapshot(c.ID)
	if err != nil {
		return entity.WindowContainer{}, err
	}
	state.PendingSync.QueueRedraw(parentID).QueueEvent(entity.WindowManaged(dto))

	logging.FromContext(ctx).Info().
		Str("container_id", string(c.ID)).
		Str("class", native.ClassName).
		Str("title", native.Title).
		Msg("managing window")

	window, _ := c.AsWindow()
	return window, nil
}

// tilingInsertionTarget picks where a new tiling window goes: right after the
// focused tiling container, or at the end of the focused workspace.
func tilingInsertionTarget(state *entity.WmState) (entity.ContainerID, int, error) {
	focused, ok := state.FocusedContainer()
	if !ok {
		monitors := state.Tree.Monitors()
		if len(monitors) == 0 {
			return "", 0, &entity.InvariantError{Op: "manage window", Reason: "no monitor to place window on"}
		}
		workspace, ok := state.Tree.DisplayedWorkspace(monitors[0].ID)
		if !ok {
			return "", 0, &entity.InvariantError{Op: "manage window", ID: monitors[0].ID, Reason: "monitor has no workspace"}
		}
		return workspace.ID, len(workspace.Children), nil
	}

	if _, ok := focused.AsTilingContainer(); ok {
		index, _ := state.Tree.Index(focused.ID)
		return focused.Parent, index + 1, nil
	}

	workspace, ok := state.Tree.Workspace(focused.ID)
	if !ok {
		return "", 0, &entity.InvariantError{Op: "manage window", ID: focused.ID, Reason: "focused container has no workspace"}
	}
	return workspace.ID, len(workspace.Children), nil
}

// UnmanageWindow removes a window from the tree and destroys its container.
func (uc *ManageContainersUseCase) UnmanageWindow(
	ctx context.Context,
	state *entity.WmState,
	id entity.ContainerID,
) error {
	c, ok := state.Tree.Get(id)
	if !ok {
		return fmt.Errorf("unmanage window: %w: %s", entity.ErrContainerNotFound, id)
	}
	window, ok := c.AsWindow()
	if !ok {
		return fmt.Errorf("unmanage %s: %w", c.Kind, entity.ErrUnsupportedOperation)
	}

	wasFocused := false
	if focused, ok := state.FocusedContainer(); ok && focused.ID == id {
		wasFocused = true
	}

	workspace, err := uc.detachTiling(ctx, state, id)
	if err != nil {
		return err
	}
	handle := window.Native.Handle
	if err := state.Tree.Destroy(id); err != nil {
		return err
	}

	state.PendingSync.QueueEvent(entity.WindowUnmanaged(id, handle))
	if wasFocused && workspace != nil {
		state.PendingSync.QueueFocusChange()
	}

	logging.FromContext(ctx).Info().
		Str("container_id", string(id)).
		Msg("unmanaged window")

	return nil
}

// SetWindowState moves a window through the window-state machine. The old
// container is detached and destroyed, and a container of the new variant is
// attached in its place with a new identifier. The native window and the
// completed run-once rules carry over.
func (uc *ManageContainersUseCase) SetWindowState(
	ctx context.Context,
	state *entity.WmState,
	gaps entity.Gaps,
	id entity.ContainerID,
	newState entity.WindowState,
) (entity.WindowContainer, error) {
	log := logging.FromContext(ctx)
	tree := state.Tree

	c, ok := tree.Get(id)
	if !ok {
		return entity.WindowContainer{}, fmt.Errorf("set window state: %w: %s", entity.ErrContainerNotFound, id)
	}
	window, ok := c.AsWindow()
	if !ok {
		return entity.WindowContainer{}, fmt.Errorf("set window state on %s: %w", c.Kind, entity.ErrUnsupportedOperation)
	}
	if window.State == newState {
		return window, nil
	}

	workspace, ok := tree.Workspace(id)
	if !ok {
		return entity.WindowContainer{}, &entity.InvariantError{Op: "set window state", ID: id, Reason: "window has no workspace"}
	}

	rect, err := tree.ToRect(id, gaps)
	if err != nil {
		return entity.WindowContainer{}, err
	}
	if window.Kind == entity.KindNonTilingWindow {
		rect = window.Rect
	}

	wasFocused := false
	if focused, ok := state.FocusedContainer(); ok && focused.ID == id {
		wasFocused = true
	}

	var replacement *entity.Container
	if newState == entity.WindowStateTiling {
		if _, err := uc.detachTiling(ctx, state, id); err != nil {
			return entity.WindowContainer{}, err
		}
		parentID, index := uc.lastFocusedTilingSlot(tree, workspace.ID)
		replacement = tree.NewTilingWindow(window.Native, 1)
		if err := attachTiling(tree, replacement, parentID, index); err != nil {
			return entity.WindowContainer{}, err
		}
	} else {
		replacement = tree.NewNonTilingWindow(window.Native, newState, rect)
		if _, err := uc.detachTiling(ctx, state, id); err != nil {
			return entity.WindowContainer{}, err
		}
		if err := tree.Attach(replacement.ID, workspace.ID, len(workspace.Children)); err != nil {
			return entity.WindowContainer{}, err
		}
	}

	replacement.DoneRules = append([]string{}, window.DoneRules...)
	if err := tree.Destroy(id); err != nil {
		return entity.WindowContainer{}, err
	}

	if wasFocused {
		if err := tree.SetFocusedDescendant(replacement.ID, ""); err != nil {
			return entity.WindowContainer{}, err
		}
		state.PendingSync.QueueFocusChange()
	}

	state.PendingSync.
		QueueRedraw(workspace.ID).
		QueueEvent(entity.WindowStateChanged(replacement.ID, replacement.Native.Handle, newState))

	log.Debug().
		Str("old_id", string(id)).
		Str("container_id", string(replacement.ID)).
		Str("from", string(window.State)).
		Str("to", string(newState)).
		Msg("window state changed")

	result, _ := replacement.AsWindow()
	return result, nil
}

// lastFocusedTilingSlot returns the position right after the most recently
// focused tiling window of a workspace, or the end of the workspace.
func (uc *ManageContainersUseCase) lastFocusedTilingSlot(tree *entity.Tree, workspaceID entity.ContainerID) (entity.ContainerID, int) {
	for c := range tree.DescendantFocusOrder(workspaceID) {
		if c.Kind == entity.KindTilingWindow {
			index, _ := tree.Index(c.ID)
			return c.Parent, index + 1
		}
	}
	workspace, _ := tree.Get(workspaceID)
	return workspaceID, len(workspace.Children)
}
