package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/transition"
)

// TransitionRepository persists transition edges.
type TransitionRepository interface {
	// Add persists an edge. A duplicate (from, to) pair yields errs.ValueIsInvalidError.
	Add(ctx context.Context, edge *transition.Transition) error

	Get(ctx context.Context, id kernel.UUID) (*transition.Transition, error)

	// List returns every edge; used to build a transition.Graph.
	List(ctx context.Context) ([]*transition.Transition, error)

	// ListFrom returns the edges leaving statusID.
	ListFrom(ctx context.Context, statusID kernel.UUID) ([]*transition.Transition, error)

	// Exists reports whether a from -> to edge is stored.
	Exists(ctx context.Context, from, to kernel.UUID) (bool, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// DeleteByStatus removes every edge touching statusID and returns how many went.
	DeleteByStatus(ctx context.Context, statusID kernel.UUID) (int64, error)
}
