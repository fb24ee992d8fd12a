package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery returns an order's status history, oldest first.
//
// Example:
//
//	query, _ := NewGetOrderHistoryQuery(orderID)
//	history, err := handler.Handle(ctx, query)
//	// history.CurrentStatus == history.Entries[len(history.Entries)-1].ToStatus
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryEntryView is one audit row.
type HistoryEntryView struct {
	ID         kernel.UUID `json:"id"`
	FromStatus *string     `json:"fromStatus"`
	ToStatus   string      `json:"toStatus"`
	Notes      string      `json:"notes,omitempty"`
	ChangedBy  string      `json:"changedBy"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// OrderHistoryView is an order's current status plus its full history.
type OrderHistoryView struct {
	OrderID       kernel.UUID        `json:"orderId"`
	OrderNumber   string             `json:"orderNumber"`
	CurrentStatus string             `json:"currentStatus"`
	Entries       []HistoryEntryView `json:"entries"`
}

type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for an unknown order.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) (OrderHistoryView, error) {
	if err := query.Validate(); err != nil {
		return OrderHistoryView{}, err
	}

	var head struct {
		OrderNumber string
		Status      string
	}
	res := h.db.WithContext(ctx).
		Raw(`SELECT order_number, status FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&head)
	if res.Error != nil {
		return OrderHistoryView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return OrderHistoryView{}, errs.NewObjectNotFoundError("id", query.OrderID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			notes,
			changed_by,
			created_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY created_at, seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderHistoryView{}, err
	}
	defer rows.Close()

	view := OrderHistoryView{
		OrderID:       query.OrderID(),
		OrderNumber:   head.OrderNumber,
		CurrentStatus: head.Status,
		Entries:       make([]HistoryEntryView, 0),
	}
	for rows.Next() {
		var (
			entry HistoryEntryView
			id    uuid.UUID
			from  sql.NullString
		)
		if err = rows.Scan(&id, &from, &entry.ToStatus, &entry.Notes, &entry.ChangedBy, &entry.CreatedAt); err != nil {
			return OrderHistoryView{}, err
		}
		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return OrderHistoryView{}, err
		}
		if from.Valid {
			entry.FromStatus = &from.String
		}
		view.Entries = append(view.Entries, entry)
	}

	if err = rows.Err(); err != nil {
		return OrderHistoryView{}, err
	}
	return view, nil
}
