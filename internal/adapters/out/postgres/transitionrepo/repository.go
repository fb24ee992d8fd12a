package transitionrepo

import (
	"context"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/transition"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransitionRepository implements ports.TransitionRepository using GORM.
type GormTransitionRepository struct {
	db *gorm.DB
}

func NewGormTransitionRepository(db *gorm.DB) *GormTransitionRepository {
	return &GormTransitionRepository{db: db}
}

// Add inserts an edge. A duplicate pair or an unknown status id yields
// errs.ValueIsInvalidError.
func (r *GormTransitionRepository) Add(ctx context.Context, edge *transition.Transition) error {
	if err := edge.Validate(); err != nil {
		return err
	}

	dto := fromDomain(edge)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "transition", edge.ID().String())
	}
	return nil
}

func (r *GormTransitionRepository) Get(ctx context.Context, id kernel.UUID) (*transition.Transition, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransitionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "transition", id.String())
	}
	return toDomain(dto)
}

func (r *GormTransitionRepository) List(ctx context.Context) ([]*transition.Transition, error) {
	var dtos []TransitionDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormTransitionRepository) ListFrom(ctx context.Context, statusID kernel.UUID) ([]*transition.Transition, error) {
	var dtos []TransitionDTO
	err := r.db.WithContext(ctx).
		Where("from_status_id = ?", statusID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

func (r *GormTransitionRepository) Exists(ctx context.Context, from, to kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&TransitionDTO{}).
		Where("from_status_id = ? AND to_status_id = ?", from.Bytes(), to.Bytes()).
		Count(&count).Error
	return count > 0, err
}

func (r *GormTransitionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TransitionDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("transition", id.String())
	}
	return nil
}

// DeleteByStatus removes edges in both directions.
func (r *GormTransitionRepository) DeleteByStatus(ctx context.Context, statusID kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("from_status_id = ? OR to_status_id = ?", statusID.Bytes(), statusID.Bytes()).
		Delete(&TransitionDTO{})
	return result.RowsAffected, result.Error
}
