package ports

import (
	"context"

	"github.com/gamedeck/gamedeck/internal/core/domain"
)

// ActivityPublisher accepts events for asynchronous processing. Publish must
// not block the caller beyond queue backpressure.
type ActivityPublisher interface {
	Publish(event domain.ActivityEvent)
}

// ActivityService records processed events and serves the recent feed.
type ActivityService interface {
	Record(ctx context.Context, event domain.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
}
