package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/logging"
)

// ErrNothingToResize is returned when no ancestor of the container can be
// resized along the requested dimension.
var ErrNothingToResize = errors.New("nothing to resize")

// minTilingSize is the smallest share a tiling container can be resized to.
const minTilingSize = 0.01

// ManageContainersUseCase handles structural edits and focus changes on the
// container tree. Every method runs to completion on the calling goroutine
// and records its side effects in the state's pending sync.
type ManageContainersUseCase struct{}

// NewManageContainersUseCase creates a new container management use case.
func NewManageContainersUseCase() *ManageContainersUseCase {
	return &ManageContainersUseCase{}
}

// FlattenSplitContainer moves the children of a split into the split's parent
// and destroys the split.
func (uc *ManageContainersUseCase) FlattenSplitContainer(
	ctx context.Context,
	state *entity.WmState,
	splitID entity.ContainerID,
) error {
	log := logging.FromContext(ctx)

	split, ok := state.Tree.Get(splitID)
	if !ok {
		return fmt.Errorf("flatten split: %w: %s", entity.ErrContainerNotFound, splitID)
	}
	parentID := split.Parent
	childCount := len(split.Children)

	if err := state.Tree.FlattenSplit(splitID); err != nil {
		return err
	}
	if err := state.Tree.Destroy(splitID); err != nil {
		return fmt.Errorf("destroy flattened split: %w", err)
	}

	state.PendingSync.QueueRedraw(parentID)

	log.Debug().
		Str("split_id", string(splitID)).
		Str("parent_id", string(parentID)).
		Int("children", childCount).
		Msg("flattened split container")

	return nil
}

// SplitContainer wraps a tiling container in a new split on the given axis.
// Containers managed later next to it land inside the split.
func (uc *ManageContainersUseCase) SplitContainer(
	ctx context.Context,
	state *entity.WmState,
	id entity.ContainerID,
	dir entity.TilingDirection,
) (*entity.Container, error) {
	c, ok := state.Tree.Get(id)
	if !ok {
		return nil, fmt.Errorf("split container: %w: %s", entity.ErrContainerNotFound, id)
	}
	if _, ok := c.AsTilingContainer(); !ok {
		return nil, fmt.Errorf("split %s: %w", c.Kind, entity.ErrUnsupportedOperation)
	}

	split, err := state.Tree.WrapInSplit(id, dir)
	if err != nil {
		return nil, fmt.Errorf("split container: %w", err)
	}

	state.PendingSync.
		QueueRedraw(split.ID).
		QueueEvent(entity.TilingDirectionChanged(split.ID, dir))

	logging.FromContext(ctx).Debug().
		Str("container_id", string(id)).
		Str("split_id", string(split.ID)).
		Str("tiling_direction", string(dir)).
		Msg("wrapped container in split")

	return split, nil
}

// ToggleTilingDirection changes the axis new containers are tiled along.
// A tiling window sharing its parent with other tiling containers is wrapped
// in a split on the opposite axis; a lone window flips its parent instead.
// A workspace or split passed directly is flipped itself.
func (uc *ManageContainersUseCase) ToggleTilingDirection(
	ctx context.Context,
	state *entity.WmState,
	id entity.ContainerID,
) error {
	c, ok := state.Tree.Get(id)
	if !ok {
		return fmt.Errorf("toggle tiling direction: %w: %s", entity.ErrContainerNotFound, id)
	}

	target, ok := c.AsDirectionContainer()
	if !ok {
		parent, hasParent := state.Tree.Parent(id)
		if !hasParent {
			return fmt.Errorf("toggle tiling direction: %w", entity.ErrUnsupportedOperation)
		}
		if target, ok = parent.AsDirectionContainer(); !ok {
			return fmt.Errorf("toggle tiling direction: %w", entity.ErrUnsupportedOperation)
		}

		if _, tiling := c.AsTilingContainer(); tiling && countTilingChildren(state.Tree, parent.ID) > 1 {
			_, err := uc.SplitContainer(ctx, state, id, target.TilingDirection.Inverse())
			return err
		}
	}

	target.TilingDirection = target.TilingDirection.Inverse()
	state.PendingSync.
		QueueRedraw(target.ID).
		QueueEvent(entity.TilingDirectionChanged(target.ID, target.TilingDirection))

	logging.FromContext(ctx).Debug().
		Str("container_id", string(target.ID)).
		Str("tiling_direction", string(target.TilingDirection)).
		Msg("toggled tiling direction")

	return nil
}

func countTilingChildren(tree *entity.Tree, id entity.ContainerID) int {
	n := 0
	for range tree.TilingChildren(id) {
		n++
	}
	return n
}

// attachTiling inserts a tiling container under parent at index and gives it
// an equal share, scaling the existing tiling siblings down to make room.
func attachTiling(tree *entity.Tree, child *entity.Container, parentID entity.ContainerID, index int) error {
	var siblings []*entity.Container
	for sibling := range tree.TilingChildren(parentID) {
		siblings = append(siblings, sibling)
	}

	share := 1 / float64(len(siblings)+1)
	for _, sibling := range siblings {
		sibling.TilingSize *= 1 - share
	}
	child.TilingSize = share

	return tree.Attach(child.ID, parentID, index)
}

// detachTiling removes a container from the tree. When it was a tiling
// container its siblings reclaim the freed space in proportion to their
// sizes, and a split left with a single child is flattened. Empty splits
// are removed as well. It returns the workspace the container lived on.
func (uc *ManageContainersUseCase) detachTiling(
	ctx context.Context,
	state *entity.WmState,
	id entity.ContainerID,
) (*entity.Container, error) {
	tree := state.Tree

	c, ok := tree.Get(id)
	if !ok {
		return nil, fmt.Errorf("detach: %w: %s", entity.ErrContainerNotFound, id)
	}
	workspace, _ := tree.Workspace(id)
	parent, hasParent := tree.Parent(id)

	if err := tree.Detach(id); err != nil {
		return nil, err
	}
	if !hasParent {
		return workspace, nil
	}

	if tiling, ok := c.AsTilingContainer(); ok {
		reclaimTilingSize(tree, parent.ID, tiling.TilingSize)
	}

	if parent.IsSplit() {
		switch len(parent.Children) {
		case 0:
			if _, err := uc.detachTiling(ctx, state, parent.ID); err != nil {
				return nil, err
			}
			if err := tree.Destroy(parent.ID); err != nil {
				return nil, err
			}
		case 1:
			if err := uc.FlattenSplitContainer(ctx, state, parent.ID); err != nil {
				return nil, err
			}
		}
	}

	if workspace != nil {
		state.PendingSync.QueueRedraw(workspace.ID)
	}
	return workspace, nil
}

func reclaimTilingSize(tree *entity.Tree, parentID entity.ContainerID, freed float64) {
	var siblings []*entity.Container
	total := 0.0
	for sibling := range tree.TilingChildren(parentID) {
		siblings = append(siblings, sibling)
		total += sibling.TilingSize
	}

	for _, sibling := range siblings {
		if total > 0 {
			sibling.TilingSize += freed * sibling.TilingSize / total
		} else {
			sibling.TilingSize += freed / float64(len(siblings))
		}
	}
}
