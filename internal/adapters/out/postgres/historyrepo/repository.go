package historyrepo

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements ports.StatusHistoryRepository.
// It deliberately has no update or delete.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Add inserts entries with one statement, preserving their order in seq.
func (r *GormStatusHistoryRepository) Add(ctx context.Context, entries ...*order.StatusChange) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]HistoryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, fromDomain(e))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// ListByOrder returns the history of orderID oldest first.
func (r *GormStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
