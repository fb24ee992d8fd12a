// Package historyrepo persists the append-only order status history.
package historyrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// HistoryDTO is one row of order_status_history. Seq is assigned by the database
// and breaks ties between rows written in the same instant.
type HistoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq        int64     `gorm:"->;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;index:order_status_history_order_created_idx,priority:1"`
	FromStatus *string   `gorm:"size:50"`
	ToStatus   string    `gorm:"size:50"`
	Notes      string
	ChangedBy  string    `gorm:"size:100"`
	CreatedAt  time.Time `gorm:"autoCreateTime:false;index:order_status_history_order_created_idx,priority:2"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(c *order.StatusChange) HistoryDTO {
	var from *string
	if c.FromStatus() != nil {
		s := c.FromStatus().String()
		from = &s
	}

	return HistoryDTO{
		ID:         c.ID().Bytes(),
		OrderID:    c.OrderID().Bytes(),
		FromStatus: from,
		ToStatus:   c.ToStatus().String(),
		Notes:      c.Notes(),
		ChangedBy:  c.ChangedBy(),
		CreatedAt:  c.CreatedAt(),
	}
}

// toDomain does not re-validate slugs: rows may name statuses that were renamed
// out of existence long ago.
func toDomain(dto HistoryDTO) (*order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var from *status.Slug
	if dto.FromStatus != nil {
		s := status.Slug(*dto.FromStatus)
		from = &s
	}

	return order.RestoreStatusChange(
		id,
		dto.Seq,
		orderID,
		from,
		status.Slug(dto.ToStatus),
		dto.Notes,
		dto.ChangedBy,
		dto.CreatedAt.UTC(),
	), nil
}
