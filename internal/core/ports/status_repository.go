package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
)

// StatusRepository persists status definitions.
type StatusRepository interface {
	// Add persists a new status. A duplicate slug yields errs.ValueIsInvalidError.
	Add(ctx context.Context, aggregate *status.Status) error

	// Update persists the mutable definition of an existing status.
	Update(ctx context.Context, aggregate *status.Status) error

	// Get retrieves a status by id.
	Get(ctx context.Context, id kernel.UUID) (*status.Status, error)

	// GetBySlug retrieves a status by slug.
	GetBySlug(ctx context.Context, slug status.Slug) (*status.Status, error)

	// List returns all statuses ordered by sort order, then name.
	List(ctx context.Context) ([]*status.Status, error)

	// Delete removes a status row.
	Delete(ctx context.Context, id kernel.UUID) error
}
