package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListStatusesQueryIsNotConstructed = errors.New(
	"ListStatusesQuery must be created via NewListStatusesQuery constructor",
)

// ListStatusesQuery returns every status ordered by sort order, then name.
type ListStatusesQuery struct {
	guard guard.ConstructorGuard
}

func NewListStatusesQuery() ListStatusesQuery {
	return ListStatusesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListStatusesQuery) Validate() error {
	return q.guard.Validate(ErrListStatusesQueryIsNotConstructed)
}

// ListStatusesQueryHandler reads the status registry together with live order counts.
type ListStatusesQueryHandler struct {
	db     *gorm.DB
	policy services.TransitionPolicy
}

func NewListStatusesQueryHandler(db *gorm.DB, policy services.TransitionPolicy) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{db: db, policy: policy}
}

func (h ListStatusesQueryHandler) Handle(ctx context.Context, query ListStatusesQuery) ([]StatusView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadStatusViews(ctx, h.db, h.policy, "")
}
