// Package queries contains read operations. Query handlers read straight from the
// database with raw SQL through gorm and return flat views ready for serialization;
// they never go through repositories or units of work.
package queries

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/template"
)

// StatusView is a status with the figures computed from live data.
type StatusView struct {
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

	OrderCount int64 `json:"orderCount"`
	CanDelete  bool  `json:"canDelete"`
	IsTerminal bool  `json:"isTerminal"`
}

// StatusDetail adds the template summary and the edges around a status.
type StatusDetail struct {
	StatusView
	EmailTemplate *template.Summary `json:"emailTemplate"`
	Inbound       []TransitionView  `json:"inboundTransitions"`
	Outbound      []TransitionView  `json:"outboundTransitions"`
}

// TransitionView is an edge with both ends resolved.
type TransitionView struct {
	ID           kernel.UUID `json:"id"`
	FromStatusID kernel.UUID `json:"fromStatusId"`
	FromSlug     string      `json:"fromSlug"`
	FromName     string      `json:"fromName"`
	ToStatusID   kernel.UUID `json:"toStatusId"`
	ToSlug       string      `json:"toSlug"`
	ToName       string      `json:"toName"`
	CreatedAt    time.Time   `json:"createdAt"`
}
