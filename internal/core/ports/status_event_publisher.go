package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
)

// StatusEntered is emitted after an order enters a status and the change is committed.
type StatusEntered struct {
	OrderID    kernel.UUID
	Status     status.Slug
	Previous   *status.Slug
	Notes      string
	ChangedBy  string
	OccurredAt time.Time
}

// StatusEventPublisher hands events to a consumer that owns delivery and retries.
// Callers treat a publish error as non-fatal.
type StatusEventPublisher interface {
	Publish(ctx context.Context, events ...StatusEntered) error
}
