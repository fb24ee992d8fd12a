package templaterepo

import (
	"context"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/template"

	"gorm.io/gorm"
)

// GormEmailTemplateRepository implements ports.EmailTemplateRepository.
type GormEmailTemplateRepository struct {
	db *gorm.DB
}

func NewGormEmailTemplateRepository(db *gorm.DB) *GormEmailTemplateRepository {
	return &GormEmailTemplateRepository{db: db}
}

func (r *GormEmailTemplateRepository) Get(ctx context.Context, id kernel.UUID) (*template.EmailTemplate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TemplateDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "emailTemplate", id.String())
	}
	return toDomain(dto)
}
