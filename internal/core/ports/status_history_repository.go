package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// StatusHistoryRepository is append-only. There is no way to change or remove a row.
type StatusHistoryRepository interface {
	// Add appends entries in the given order.
	Add(ctx context.Context, entries ...*order.StatusChange) error

	// ListByOrder returns an order's history oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error)
}
