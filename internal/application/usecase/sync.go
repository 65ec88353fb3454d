package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// SyncUseCase applies a state's pending sync to the native window system
// and publishes the queued events.
type SyncUseCase struct {
	native    port.NativeWindowSystem
	publisher port.EventPublisher
}

// NewSyncUseCase creates a new sync use case.
func NewSyncUseCase(native port.NativeWindowSystem, publisher port.EventPublisher) *SyncUseCase {
	return &SyncUseCase{native: native, publisher: publisher}
}

// Flush performs, in order: window placement for every queued redraw, the
// native focus change, the cursor jump, and event publication. A failing
// step does not stop the following ones; all errors are returned joined.
// The pending sync is always reset.
func (uc *SyncUseCase) Flush(ctx context.Context, state *entity.WmState, cfg *UserConfig) error {
	log := logging.FromContext(ctx)
	pending := &state.PendingSync
	defer pending.Reset()

	if pending.IsEmpty() {
		return nil
	}

	var errs []error

	if redraws := pending.Redraws(); len(redraws) > 0 {
		placements, err := placementsFor(state.Tree, cfg.Gaps, redraws)
		if err != nil {
			errs = append(errs, err)
		}
		if len(placements) > 0 {
			if err := uc.native.ApplyPlacement(ctx, placements); err != nil {
				errs = append(errs, fmt.Errorf("apply placement: %w", err))
			}
		}
		log.Debug().
			Int("containers", len(redraws)).
			Int("windows", len(placements)).
			Msg("redraw applied")
	}

	focused, hasFocus := state.FocusedContainer()

	if pending.NeedsFocusChange() {
		if err := uc.syncFocus(ctx, state, focused, hasFocus); err != nil {
			errs = append(errs, err)
		}
	}

	if pending.NeedsCursorJump() && cfg.CursorJump && hasFocus && focused.IsWindow() {
		rect, err := state.Tree.ToRect(focused.ID, cfg.Gaps)
		if err != nil {
			errs = append(errs, err)
		} else {
			x, y := rect.Center()
			if err := uc.native.SetCursorPosition(ctx, x, y); err != nil {
				errs = append(errs, fmt.Errorf("set cursor position: %w", err))
			}
		}
	}

	for _, event := range pending.Events() {
		uc.publisher.Publish(ctx, event)
	}

	return errors.Join(errs...)
}

func (uc *SyncUseCase) syncFocus(
	ctx context.Context,
	state *entity.WmState,
	focused *entity.Container,
	hasFocus bool,
) error {
	var err error
	if window, ok := focused.AsWindow(); hasFocus && ok {
		if err = uc.native.SetForeground(ctx, window.Native); err != nil {
			err = fmt.Errorf("set foreground: %w", err)
		}
	} else if err = uc.native.ResetForeground(ctx); err != nil {
		err = fmt.Errorf("reset foreground: %w", err)
	}

	if hasFocus {
		dto, snapErr := state.Tree.Snapshot(focused.ID)
		if snapErr != nil {
			return errors.Join(err, snapErr)
		}
		state.PendingSync.QueueEvent(entity.FocusChanged(dto))
	}
	return err
}

// placementsFor collects the windows under the given containers, each once,
// with their computed rectangle and visibility.
func placementsFor(tree *entity.Tree, gaps entity.Gaps, ids []entity.ContainerID) ([]port.WindowPlacement, error) {
	var (
		placements []port.WindowPlacement
		errs       []error
	)
	seen := make(map[entity.ContainerID]struct{})

	add := func(c *entity.Container) {
		window, ok := c.AsWindow()
		if !ok {
			return
		}
		if _, dup := seen[c.ID]; dup {
			return
		}
		seen[c.ID] = struct{}{}

		rect, err := tree.ToRect(c.ID, gaps)
		if err != nil {
			errs = append(errs, err)
			return
		}

		state := entity.WindowStateTiling
		if !window.IsTiling() {
			state = window.State
		}

		placements = append(placements, port.WindowPlacement{
			Window:  window.Native,
			Rect:    rect,
			State:   state,
			Visible: isDisplayed(tree, c.ID) && state != entity.WindowStateMinimized,
		})
	}

	for _, id := range ids {
		c, ok := tree.Get(id)
		if !ok || c.IsDetached() {
			continue
		}
		add(c)
		for descendant := range tree.Descendants(id) {
			add(descendant)
		}
	}

	return placements, errors.Join(errs...)
}

func isDisplayed(tree *entity.Tree, id entity.ContainerID) bool {
	workspace, ok := tree.Workspace(id)
	if !ok {
		return false
	}
	displayed, ok := tree.DisplayedWorkspace(workspace.Parent)
	return ok && displayed.ID == workspace.ID
}
