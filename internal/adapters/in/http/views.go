package http

import (
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/model/transition"
)

// StatusResponse is a status as returned by create and update.
type StatusResponse struct {
	ID               kernel.UUID  `json:"id"`
	Slug             string       `json:"slug"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Icon             string       `json:"icon"`
	Color            string       `json:"color"`
	BadgeColor       string       `json:"badgeColor"`
	IsCore           bool         `json:"isCore"`
	IsPaid           bool         `json:"isPaid"`
	IncludeInReports bool         `json:"includeInReports"`
	AllowDownloads   bool         `json:"allowDownloads"`
	SortOrder        int          `json:"sortOrder"`
	IsActive         bool         `json:"isActive"`
	EmailTemplateID  *kernel.UUID `json:"emailTemplateId"`
	SendEmailOnEnter bool         `json:"sendEmailOnEnter"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

func newStatusResponse(st *status.Status) StatusResponse {
	def := st.Definition()
	return StatusResponse{
		ID:               st.ID(),
		Slug:             st.Slug().String(),
		Name:             def.Name,
		Description:      def.Description,
		Icon:             def.Icon,
		Color:            def.Color,
		BadgeColor:       def.BadgeColor,
		IsCore:           st.IsCore(),
		IsPaid:           def.IsPaid,
		IncludeInReports: def.IncludeInReports,
		AllowDownloads:   def.AllowDownloads,
		SortOrder:        def.SortOrder,
		IsActive:         def.IsActive,
		EmailTemplateID:  def.EmailTemplateID,
		SendEmailOnEnter: def.SendEmailOnEnter,
		CreatedAt:        st.CreatedAt(),
		UpdatedAt:        st.UpdatedAt(),
	}
}

type TransitionResponse struct {
	ID           kernel.UUID `json:"id"`
	FromStatusID kernel.UUID `json:"fromStatusId"`
	ToStatusID   kernel.UUID `json:"toStatusId"`
	CreatedAt    time.Time   `json:"createdAt"`
}

func newTransitionResponse(t *transition.Transition) TransitionResponse {
	return TransitionResponse{
		ID:           t.ID(),
		FromStatusID: t.From(),
		ToStatusID:   t.To(),
		CreatedAt:    t.CreatedAt(),
	}
}

// DeleteStatusResponse summarises a delete-and-reassign.
type DeleteStatusResponse struct {
	DeletedStatus      string  `json:"deletedStatus"`
	ReassignedTo       *string `json:"reassignedTo"`
	ReassignedCount    int     `json:"reassignedCount"`
	RemovedTransitions int64   `json:"removedTransitions"`
}

func newDeleteStatusResponse(res commands.DeleteStatusResult) DeleteStatusResponse {
	out := DeleteStatusResponse{
		ReassignedCount:    res.ReassignedCount,
		RemovedTransitions: res.RemovedTransitions,
	}
	if res.DeletedStatus != nil {
		out.DeletedStatus = res.DeletedStatus.Slug().String()
	}
	if res.ReassignedTo != nil {
		to := res.ReassignedTo.String()
		out.ReassignedTo = &to
	}
	return out
}

type OrderResponse struct {
	ID             kernel.UUID `json:"id"`
	OrderNumber    string      `json:"orderNumber"`
	Status         string      `json:"status"`
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	TotalCents     int64       `json:"totalCents"`
	TrackingNumber string      `json:"trackingNumber,omitempty"`
	TrackingURL    string      `json:"trackingUrl,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:             o.ID(),
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

// StatusChangeResponse is the history row written by a status change.
type StatusChangeResponse struct {
	ID         kernel.UUID `json:"id"`
	OrderID    kernel.UUID `json:"orderId"`
	FromStatus *string     `json:"fromStatus"`
	ToStatus   string      `json:"toStatus"`
	Notes      string      `json:"notes,omitempty"`
	ChangedBy  string      `json:"changedBy"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func newStatusChangeResponse(c *order.StatusChange) StatusChangeResponse {
	out := StatusChangeResponse{
		ID:        c.ID(),
		OrderID:   c.OrderID(),
		ToStatus:  c.ToStatus().String(),
		Notes:     c.Notes(),
		ChangedBy: c.ChangedBy(),
		CreatedAt: c.CreatedAt(),
	}
	if from := c.FromStatus(); from != nil {
		s := from.String()
		out.FromStatus = &s
	}
	return out
}
