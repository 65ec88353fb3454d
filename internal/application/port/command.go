package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// CommandExecutor runs a single command string against a subject container.
// Commands may restructure the tree; callers must not assume the subject
// is still attached afterwards.
type CommandExecutor interface {
	Execute(ctx context.Context, command string, subject entity.ContainerID, state *entity.WmState) error
}
