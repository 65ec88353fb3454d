package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// TreeStore persists the last known container tree for external readers
// such as status bars.
type TreeStore interface {
	SaveTree(ctx context.Context, tree entity.ContainerDTO, focused entity.ContainerID) error
}
