// Package transitionrepo maps transition edges to the status_transitions table.
package transitionrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/transition"

	"github.com/google/uuid"
)

type TransitionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromStatusID uuid.UUID `gorm:"type:uuid;uniqueIndex:status_transitions_pair_key,priority:1"`
	ToStatusID   uuid.UUID `gorm:"type:uuid;uniqueIndex:status_transitions_pair_key,priority:2"`
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

func (TransitionDTO) TableName() string {
	return "status_transitions"
}

func fromDomain(t *transition.Transition) TransitionDTO {
	return TransitionDTO{
		ID:           t.ID().Bytes(),
		FromStatusID: t.From().Bytes(),
		ToStatusID:   t.To().Bytes(),
		CreatedAt:    t.CreatedAt(),
	}
}

func toDomain(dto TransitionDTO) (*transition.Transition, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	from, err := kernel.UUIDFromBytes(dto.FromStatusID[:])
	if err != nil {
		return nil, err
	}
	to, err := kernel.UUIDFromBytes(dto.ToStatusID[:])
	if err != nil {
		return nil, err
	}
	return transition.RestoreTransition(id, from, to, dto.CreatedAt.UTC()), nil
}

func toDomainList(dtos []TransitionDTO) ([]*transition.Transition, error) {
	edges := make([]*transition.Transition, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		edges = append(edges, t)
	}
	return edges, nil
}
