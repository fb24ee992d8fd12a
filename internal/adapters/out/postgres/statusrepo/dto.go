// Package statusrepo maps status definitions to the order_statuses table.
package statusrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO is the row shape of order_statuses.
type StatusDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug             string    `gorm:"size:50;uniqueIndex:order_statuses_slug_key"`
	Name             string    `gorm:"size:100"`
	Description      string
	Icon             string `gorm:"size:100"`
	Color            string `gorm:"size:7"`
	BadgeColor       string `gorm:"size:100"`
	IsCore           bool
	IsPaid           bool
	IncludeInReports bool
	AllowDownloads   bool
	SortOrder        int
	IsActive         bool
	EmailTemplateID  *uuid.UUID `gorm:"type:uuid"`
	SendEmailOnEnter bool
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

func (StatusDTO) TableName() string {
	return "order_statuses"
}

// mutableColumns are written by Update; slug, is_core and created_at never change.
var mutableColumns = []string{
	"name",
	"description",
	"icon",
	"color",
	"badge_color",
	"is_paid",
	"include_in_reports",
	"allow_downloads",
	"sort_order",
	"is_active",
	"email_template_id",
	"send_email_on_enter",
	"updated_at",
}

func fromDomain(s *status.Status) StatusDTO {
	def := s.Definition()

	var templateID *uuid.UUID
	if def.EmailTemplateID != nil {
		raw := def.EmailTemplateID.Bytes()
		templateID = &raw
	}

	return StatusDTO{
		ID:               s.ID().Bytes(),
		Slug:             s.Slug().String(),
		Name:             def.Name,
		Description:      def.Description,
		Icon:             def.Icon,
		Color:            def.Color,
		BadgeColor:       def.BadgeColor,
		IsCore:           s.IsCore(),
		IsPaid:           def.IsPaid,
		IncludeInReports: def.IncludeInReports,
		AllowDownloads:   def.AllowDownloads,
		SortOrder:        def.SortOrder,
		IsActive:         def.IsActive,
		EmailTemplateID:  templateID,
		SendEmailOnEnter: def.SendEmailOnEnter,
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func toDomain(dto StatusDTO) (*status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	slug, err := status.ParseSlug(dto.Slug)
	if err != nil {
		return nil, err
	}

	var templateID *kernel.UUID
	if dto.EmailTemplateID != nil {
		tplID, tplErr := kernel.UUIDFromBytes((*dto.EmailTemplateID)[:])
		if tplErr != nil {
			return nil, tplErr
		}
		templateID = &tplID
	}

	def := status.Definition{
		Name:             dto.Name,
		Description:      dto.Description,
		Icon:             dto.Icon,
		Color:            dto.Color,
		BadgeColor:       dto.BadgeColor,
		IsPaid:           dto.IsPaid,
		IncludeInReports: dto.IncludeInReports,
		AllowDownloads:   dto.AllowDownloads,
		SortOrder:        dto.SortOrder,
		IsActive:         dto.IsActive,
		EmailTemplateID:  templateID,
		SendEmailOnEnter: dto.SendEmailOnEnter,
	}

	return status.RestoreStatus(id, slug, def, dto.IsCore, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC()), nil
}
