package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dumbwm/internal/domain/entity"
	"github.com/bnema/dumbwm/internal/domain/value"
	"github.com/bnema/dumbwm/internal/logging"
)

// ResizeDimension selects which side of a container a resize changes.
type ResizeDimension string

const (
	ResizeWidth  ResizeDimension = "width"
	ResizeHeight ResizeDimension = "height"
)

func (d ResizeDimension) axis() entity.TilingDirection {
	if d == ResizeWidth {
		return entity.TilingHorizontal
	}
	return entity.TilingVertical
}

// Resize grows or shrinks the nearest tiling container, starting at id,
// whose parent lays out along the requested dimension and has other tiling
// children to trade space with. The space is taken
// from or given back to its tiling siblings in proportion to their sizes,
// and no container shrinks below minTilingSize.
func (uc *ManageContainersUseCase) Resize(
	ctx context.Context,
	state *entity.WmState,
	gaps entity.Gaps,
	id entity.ContainerID,
	dimension ResizeDimension,
	delta value.LengthDelta,
) error {
	log := logging.FromContext(ctx)
	tree := state.Tree

	target, err := resizeTarget(tree, id, dimension.axis())
	if err != nil {
		return err
	}

	parent, _ := tree.Parent(target.ID)
	parentRect, err := tree.ToRect(parent.ID, gaps)
	if err != nil {
		return err
	}
	total := parentRect.Height
	if dimension == ResizeWidth {
		total = parentRect.Width
	}

	var siblings []*entity.Container
	for sibling := range tree.TilingChildren(parent.ID) {
		if sibling.ID != target.ID {
			siblings = append(siblings, sibling)
		}
	}
	if len(siblings) == 0 {
		return ErrNothingToResize
	}

	spare, siblingTotal := 0.0, 0.0
	for _, sibling := range siblings {
		spare += max(sibling.TilingSize-minTilingSize, 0)
		siblingTotal += sibling.TilingSize
	}

	change := delta.Sign() * delta.Inner.ToPercentage(total)
	change = min(max(change, minTilingSize-target.TilingSize), spare)
	if change == 0 {
		return nil
	}

	target.TilingSize += change
	for _, sibling := range siblings {
		if change > 0 {
			sibling.TilingSize -= change * max(sibling.TilingSize-minTilingSize, 0) / spare
		} else {
			sibling.TilingSize -= change * sibling.TilingSize / siblingTotal
		}
	}

	state.PendingSync.QueueRedraw(parent.ID)

	log.Debug().
		Str("container_id", string(target.ID)).
		Str("dimension", string(dimension)).
		Str("delta", delta.String()).
		Float64("tiling_size", target.TilingSize).
		Msg("resized tiling container")

	return nil
}

func resizeTarget(tree *entity.Tree, id entity.ContainerID, axis entity.TilingDirection) (*entity.Container, error) {
	current, ok := tree.Get(id)
	if !ok {
		return nil, fmt.Errorf("resize: %w: %s", entity.ErrContainerNotFound, id)
	}

	for {
		if _, ok := current.AsTilingContainer(); !ok {
			return nil, ErrNothingToResize
		}
		parent, ok := tree.Parent(current.ID)
		if !ok {
			return nil, &entity.InvariantError{Op: "resize", ID: current.ID, Reason: "tiling container has no parent"}
		}
		container, ok := parent.AsDirectionContainer()
		if ok && container.TilingDirection == axis && countTilingChildren(tree, parent.ID) > 1 {
			return current, nil
		}
		current = parent
	}
}
