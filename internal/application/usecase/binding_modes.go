package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// ErrUnknownBindingMode is returned when a binding mode is not configured.
var ErrUnknownBindingMode = errors.New("unknown binding mode")

// BindingModesUseCase activates and deactivates keybinding modes. The most
// recently enabled mode is always first.
type BindingModesUseCase struct{}

// NewBindingModesUseCase creates a new binding mode use case.
func NewBindingModesUseCase() *BindingModesUseCase {
	return &BindingModesUseCase{}
}

// Enable activates a configured binding mode, moving it to the front when it
// is already active.
func (uc *BindingModesUseCase) Enable(
	ctx context.Context,
	state *entity.WmState,
	cfg *UserConfig,
	name string,
) error {
	mode, ok := cfg.BindingModeByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBindingMode, name)
	}

	if i := slices.IndexFunc(state.BindingModes, func(m entity.BindingMode) bool { return m.Name == name }); i >= 0 {
		state.BindingModes[i] = mode
		entity.ShiftToIndex(&state.BindingModes, 0, mode)
	} else {
		state.BindingModes = slices.Insert(state.BindingModes, 0, mode)
	}

	state.PendingSync.QueueEvent(entity.BindingModesChanged(state.BindingModes))

	logging.FromContext(ctx).Debug().
		Str("binding_mode", name).
		Int("active", len(state.BindingModes)).
		Msg("enabled binding mode")

	return nil
}

// Disable deactivates a binding mode. Disabling an inactive mode still
// reports the current list.
func (uc *BindingModesUseCase) Disable(
	ctx context.Context,
	state *entity.WmState,
	name string,
) error {
	state.BindingModes = slices.DeleteFunc(state.BindingModes, func(m entity.BindingMode) bool {
		return m.Name == name
	})

	state.PendingSync.QueueEvent(entity.BindingModesChanged(state.BindingModes))

	logging.FromContext(ctx).Debug().
		Str("binding_mode", name).
		Int("active", len(state.BindingModes)).
		Msg("disabled binding mode")

	return nil
}
