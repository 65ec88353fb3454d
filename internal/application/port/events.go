package port

import (
	"context"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// EventPublisher delivers domain events to subscribers after a flush.
type EventPublisher interface {
	Publish(ctx context.Context, event entity.WmEvent)
}
