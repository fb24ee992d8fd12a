// Package templaterepo reads email templates owned by the content subsystem.
package templaterepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/template"

	"github.com/google/uuid"
)

type TemplateDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Subject     string
	HTMLContent string `gorm:"column:html_content"`
	TextContent string `gorm:"column:text_content"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (TemplateDTO) TableName() string {
	return "email_templates"
}

func toDomain(dto TemplateDTO) (*template.EmailTemplate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return template.RestoreEmailTemplate(
		id,
		dto.Name,
		dto.Subject,
		template.Content{HTML: dto.HTMLContent, Text: dto.TextContent},
		dto.UpdatedAt.UTC(),
	), nil
}
