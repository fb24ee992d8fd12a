package order

import (
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
)

const (
	// ChangedByAdmin is recorded when the caller does not identify itself.
	ChangedByAdmin = "Admin"
	// ChangedBySystem marks automatic changes such as reassignment on status deletion.
	ChangedBySystem = "System"
)

// StatusChange is one row of an order's status history. It is never modified after
// it has been persisted.
type StatusChange struct {
	id         kernel.UUID
	seq        int64
	orderID    kernel.UUID
	fromStatus *status.Slug
	toStatus   status.Slug
	notes      string
	changedBy  string
	createdAt  time.Time
}

func newStatusChange(orderID kernel.UUID, from *status.Slug, to status.Slug, notes, changedBy string, at time.Time) *StatusChange {
	changedBy = strings.TrimSpace(changedBy)
	if changedBy == "" {
		changedBy = ChangedByAdmin
	}

	return &StatusChange{
		id:         kernel.NewUUID(),
		orderID:    orderID,
		fromStatus: from,
		toStatus:   to,
		notes:      strings.TrimSpace(notes),
		changedBy:  changedBy,
		createdAt:  at.UTC(),
	}
}

// NewReassignment records the system moving an order off a status that is being deleted.
func NewReassignment(orderID kernel.UUID, from, to status.Slug, notes string, at time.Time) *StatusChange {
	return newStatusChange(orderID, &from, to, notes, ChangedBySystem, at)
}

// RestoreStatusChange rebuilds a history row read from storage.
func RestoreStatusChange(
	id kernel.UUID,
	seq int64,
	orderID kernel.UUID,
	from *status.Slug,
	to status.Slug,
	notes, changedBy string,
	createdAt time.Time,
) *StatusChange {
	return &StatusChange{
		id:         id,
		seq:        seq,
		orderID:    orderID,
		fromStatus: from,
		toStatus:   to,
		notes:      notes,
		changedBy:  changedBy,
		createdAt:  createdAt,
	}
}

func (c *StatusChange) ID() kernel.UUID {
	return c.id
}

// Seq is the storage insertion sequence; zero until persisted.
func (c *StatusChange) Seq() int64 {
	return c.seq
}

func (c *StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

// FromStatus is nil for the initial entry of an order.
func (c *StatusChange) FromStatus() *status.Slug {
	return c.fromStatus
}

func (c *StatusChange) ToStatus() status.Slug {
	return c.toStatus
}

func (c *StatusChange) Notes() string {
	return c.notes
}

func (c *StatusChange) ChangedBy() string {
	return c.changedBy
}

func (c *StatusChange) CreatedAt() time.Time {
	return c.createdAt
}
