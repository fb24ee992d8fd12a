package orderrepo

import (
	"context"
	"slices"
	"strings"
	"time"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database. A taken order number yields
// errs.ValueIsInvalidError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "orderNumber", dto.OrderNumber)
	}
	return nil
}

// UpdateStatus writes the current status and updated_at only.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerr.Translate(err, "order", id.String())
	}
	return toDomain(dto)
}

// CountByStatus counts orders currently in slug.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, slug status.Slug) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ?", slug.String()).
		Count(&count).Error
	return count, err
}

// ReassignStatus moves every order in from to to with a single UPDATE ... RETURNING id.
// The returned ids are sorted so history rows are written in a stable order.
func (r *GormOrderRepository) ReassignStatus(ctx context.Context, from, to status.Slug) ([]kernel.UUID, error) {
	var moved []OrderDTO
	err := r.db.WithContext(ctx).
		Model(&moved).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("status = ?", from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(moved))
	for _, dto := range moved {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids, nil
}
