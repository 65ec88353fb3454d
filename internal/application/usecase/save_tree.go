package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/application/port"
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// TreeSource exposes the current tree. WindowManager implements it.
type TreeSource interface {
	Snapshot() (entity.ContainerDTO, error)
	Focused() (entity.ContainerID, bool)
}

var _ TreeSource = (*WindowManager)(nil)

// SaveTreeUseCase hands the current tree to a TreeStore.
type SaveTreeUseCase struct {
	store port.TreeStore
}

// NewSaveTreeUseCase creates a new SaveTreeUseCase.
func NewSaveTreeUseCase(store port.TreeStore) *SaveTreeUseCase {
	return &SaveTreeUseCase{store: store}
}

// Execute snapshots source and saves it.
func (uc *SaveTreeUseCase) Execute(ctx context.Context, source TreeSource) error {
	tree, err := source.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot tree: %w", err)
	}
	focused, _ := source.Focused()

	if err := uc.store.SaveTree(ctx, tree, focused); err != nil {
		return fmt.Errorf("save tree: %w", err)
	}
	return nil
}
