package queries

import (
	"context"
	"errors"

	"storefront/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListTransitionsQueryIsNotConstructed = errors.New(
	"ListTransitionsQuery must be created via NewListTransitionsQuery constructor",
)

// ListTransitionsQuery returns the whole transition graph as an edge list.
type ListTransitionsQuery struct {
	guard guard.ConstructorGuard
}

func NewListTransitionsQuery() ListTransitionsQuery {
	return ListTransitionsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListTransitionsQuery) Validate() error {
	return q.guard.Validate(ErrListTransitionsQueryIsNotConstructed)
}

type ListTransitionsQueryHandler struct {
	db *gorm.DB
}

func NewListTransitionsQueryHandler(db *gorm.DB) ListTransitionsQueryHandler {
	return ListTransitionsQueryHandler{db: db}
}

func (h ListTransitionsQueryHandler) Handle(ctx context.Context, query ListTransitionsQuery) ([]TransitionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return loadTransitionViews(ctx, h.db, "")
}
