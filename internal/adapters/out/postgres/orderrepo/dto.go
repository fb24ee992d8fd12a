// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Only the columns the status workflow reads or writes are mapped; the rest of the
// orders table belongs to the order subsystem.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status holds a slug, not a foreign key, so orders survive status deletion
// until they are reassigned.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber    string    `gorm:"size:64;uniqueIndex:orders_order_number_key"`
	Status         string    `gorm:"size:50;index:orders_status_created_at_idx,priority:1"`
	CustomerName   string    `gorm:"size:255"`
	CustomerEmail  string    `gorm:"size:255"`
	TotalCents     int64
	TrackingNumber string    `gorm:"size:255"`
	TrackingURL    string    `gorm:"column:tracking_url"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false;index:orders_status_created_at_idx,priority:2"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:             o.ID().Bytes(),
		OrderNumber:    o.OrderNumber(),
		Status:         o.Status().String(),
		CustomerName:   o.Customer().Name,
		CustomerEmail:  o.Customer().Email,
		TotalCents:     o.TotalCents(),
		TrackingNumber: o.Tracking().Number,
		TrackingURL:    o.Tracking().URL,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	current, err := status.ParseSlug(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		current,
		order.Customer{Name: dto.CustomerName, Email: dto.CustomerEmail},
		dto.TotalCents,
		order.Tracking{Number: dto.TrackingNumber, URL: dto.TrackingURL},
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	), nil
}
