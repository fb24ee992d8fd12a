package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
)

// OrderRepository defines the persistence contract for the order aggregate as far as
// the status workflow is concerned.
type OrderRepository interface {
	// Add persists a new order. The order number must be unique.
	Add(ctx context.Context, aggregate *order.Order) error

	// UpdateStatus writes the order's current status and updated_at.
	UpdateStatus(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when no row exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CountByStatus returns how many orders currently sit in slug.
	CountByStatus(ctx context.Context, slug status.Slug) (int64, error)

	// ReassignStatus moves every order in from to to in one statement and returns
	// the ids of the migrated orders.
	ReassignStatus(ctx context.Context, from, to status.Slug) ([]kernel.UUID, error)
}
