// Package transition models the optional directed edges between statuses.
package transition

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrTransitionIsNotConstructed is returned for a zero Transition.
var ErrTransitionIsNotConstructed = errors.New("Transition must be created via NewTransition constructor")

// Transition permits moving an order from one status to another.
// Edges are unique per (from, to) pair and never loop back to their source.
type Transition struct {
	id        kernel.UUID
	from      kernel.UUID
	to        kernel.UUID
	createdAt time.Time

	isConstructed bool
}

func NewTransition(id, from, to kernel.UUID, now time.Time) (*Transition, error) {
	if err := errors.Join(
		id.Validate(),
		from.Validate(),
		to.Validate(),
	); err != nil {
		return nil, err
	}
	if from.IsEqual(to) {
		return nil, errs.NewValueIsInvalidErrorWithCause("toStatusId",
			fmt.Errorf("status %s cannot transition to itself", from))
	}

	return &Transition{
		id:            id,
		from:          from,
		to:            to,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreTransition rebuilds an edge from storage.
func RestoreTransition(id, from, to kernel.UUID, createdAt time.Time) *Transition {
	return &Transition{id: id, from: from, to: to, createdAt: createdAt, isConstructed: true}
}

func (t *Transition) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransitionIsNotConstructed
	}
	return nil
}

func (t *Transition) ID() kernel.UUID {
	return t.id
}

func (t *Transition) From() kernel.UUID {
	return t.from
}

func (t *Transition) To() kernel.UUID {
	return t.to
}

func (t *Transition) CreatedAt() time.Time {
	return t.createdAt
}

// Touches reports whether the edge references statusID in either direction.
func (t *Transition) Touches(statusID kernel.UUID) bool {
	return t.from.IsEqual(statusID) || t.to.IsEqual(statusID)
}
