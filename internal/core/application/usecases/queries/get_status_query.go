package queries

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/template"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetStatusQueryIsNotConstructed = errors.New(
	"GetStatusQuery must be created via NewGetStatusQuery constructor",
)

// GetStatusQuery loads one status with its template summary, its inbound and
// outbound edges, its order count and whether it can be deleted.
type GetStatusQuery struct {
	statusID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetStatusQuery(statusID kernel.UUID) (GetStatusQuery, error) {
	if err := statusID.Validate(); err != nil {
		return GetStatusQuery{}, err
	}
	return GetStatusQuery{statusID: statusID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusQueryIsNotConstructed)
}

func (q GetStatusQuery) StatusID() kernel.UUID {
	return q.statusID
}

type GetStatusQueryHandler struct {
	db     *gorm.DB
	policy services.TransitionPolicy
}

func NewGetStatusQueryHandler(db *gorm.DB, policy services.TransitionPolicy) GetStatusQueryHandler {
	return GetStatusQueryHandler{db: db, policy: policy}
}

// Handle returns errs.ObjectNotFoundError for an unknown id.
func (h GetStatusQueryHandler) Handle(ctx context.Context, query GetStatusQuery) (StatusDetail, error) {
	if err := query.Validate(); err != nil {
		return StatusDetail{}, err
	}

	id := query.StatusID().Bytes()
	views, err := loadStatusViews(ctx, h.db, h.policy, ` WHERE s.id = ?`, id)
	if err != nil {
		return StatusDetail{}, err
	}
	if len(views) == 0 {
		return StatusDetail{}, errs.NewObjectNotFoundError("id", query.StatusID())
	}

	detail := StatusDetail{StatusView: views[0]}

	if detail.EmailTemplateID != nil {
		detail.EmailTemplate, err = h.templateSummary(ctx, *detail.EmailTemplateID)
		if err != nil {
			return StatusDetail{}, err
		}
	}

	if detail.Inbound, err = loadTransitionViews(ctx, h.db, ` WHERE t.to_status_id = ?`, id); err != nil {
		return StatusDetail{}, err
	}
	if detail.Outbound, err = loadTransitionViews(ctx, h.db, ` WHERE t.from_status_id = ?`, id); err != nil {
		return StatusDetail{}, err
	}

	return detail, nil
}

// templateSummary returns nil when the bound template no longer exists.
func (h GetStatusQueryHandler) templateSummary(ctx context.Context, id kernel.UUID) (*template.Summary, error) {
	var row struct {
		ID      uuid.UUID
		Name    string
		Subject string
	}
	res := h.db.WithContext(ctx).Raw(`SELECT id, name, subject FROM email_templates WHERE id = ?`, id.Bytes()).Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &template.Summary{ID: id, Name: row.Name, Subject: row.Subject}, nil
}
