package statusrepo

import (
	"context"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements ports.StatusRepository using GORM.
type GormStatusRepository struct {
	db *gorm.DB
}

func NewGormStatusRepository(db *gorm.DB) *GormStatusRepository {
	return &GormStatusRepository{db: db}
}

// Add inserts a new status. A taken slug yields errs.ValueIsInvalidError.
func (r *GormStatusRepository) Add(ctx context.Context, aggregate *status.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "slug", dto.Slug)
	}
	return nil
}

// Update writes every mutable column, zero values included.
func (r *GormStatusRepository) Update(ctx context.Context, aggregate *status.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StatusDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Translate(result.Error, "emailTemplateId", aggregate.ID().String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", aggregate.ID().String())
	}
	return nil
}

func (r *GormStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "status", id.String())
	}
	return toDomain(dto)
}

func (r *GormStatusRepository) GetBySlug(ctx context.Context, slug status.Slug) (*status.Status, error) {
	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "slug = ?", slug.String()).Error; err != nil {
		return nil, pgerr.Translate(err, "status", slug.String())
	}
	return toDomain(dto)
}

func (r *GormStatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("sort_order, name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]*status.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

// Delete removes the row. Edges referencing the status must be removed first.
func (r *GormStatusRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "status", id.String())
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("status", id.String())
	}
	return nil
}
