package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const statusViewSelect = `
	SELECT
		s.id,
		s.slug,
		s.name,
		s.description,
		s.icon,
		s.color,
		s.badge_color,
		s.is_core,
		s.is_paid,
		s.include_in_reports,
		s.allow_downloads,
		s.sort_order,
		s.is_active,
		s.email_template_id,
		s.send_email_on_enter,
		s.created_at,
		s.updated_at,
		COALESCE(oc.order_count, 0) AS order_count,
		COALESCE(tc.outbound_count, 0) AS outbound_count
	FROM order_statuses s
	LEFT JOIN (
		SELECT status, COUNT(*) AS order_count FROM orders GROUP BY status
	) oc ON oc.status = s.slug
	LEFT JOIN (
		SELECT from_status_id, COUNT(*) AS outbound_count FROM status_transitions GROUP BY from_status_id
	) tc ON tc.from_status_id = s.id
`

func loadStatusViews(
	ctx context.Context,
	db *gorm.DB,
	policy services.TransitionPolicy,
	where string,
	args ...any,
) ([]StatusView, error) {
	rows, err := db.WithContext(ctx).Raw(statusViewSelect+where+` ORDER BY s.sort_order, s.name`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]StatusView, 0)
	for rows.Next() {
		var (
			v             StatusView
			id            uuid.UUID
			templateID    uuid.NullUUID
			outboundCount int64
		)
		err = rows.Scan(
			&id,
			&v.Slug,
			&v.Name,
			&v.Description,
			&v.Icon,
			&v.Color,
			&v.BadgeColor,
			&v.IsCore,
			&v.IsPaid,
			&v.IncludeInReports,
			&v.AllowDownloads,
			&v.SortOrder,
			&v.IsActive,
			&templateID,
			&v.SendEmailOnEnter,
			&v.CreatedAt,
			&v.UpdatedAt,
			&v.OrderCount,
			&outboundCount,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if templateID.Valid {
			tplID, tplErr := kernel.UUIDFromBytes(templateID.UUID[:])
			if tplErr != nil {
				return nil, tplErr
			}
			v.EmailTemplateID = &tplID
		}
		v.CanDelete = status.CanDelete(v.IsCore, v.OrderCount)
		v.IsTerminal = policy.Enforced() && outboundCount == 0
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}

const transitionViewSelect = `
	SELECT
		t.id,
		t.from_status_id,
		f.slug,
		f.name,
		t.to_status_id,
		d.slug,
		d.name,
		t.created_at
	FROM status_transitions t
	JOIN order_statuses f ON f.id = t.from_status_id
	JOIN order_statuses d ON d.id = t.to_status_id
`

func loadTransitionViews(ctx context.Context, db *gorm.DB, where string, args ...any) ([]TransitionView, error) {
	rows, err := db.WithContext(ctx).Raw(transitionViewSelect+where+` ORDER BY f.sort_order, d.sort_order, f.slug, d.slug`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]TransitionView, 0)
	for rows.Next() {
		var (
			v                TransitionView
			id, fromID, toID uuid.UUID
		)
		if err = rows.Scan(&id, &fromID, &v.FromSlug, &v.FromName, &toID, &v.ToSlug, &v.ToName, &v.CreatedAt); err != nil {
			return nil, err
		}
		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if v.FromStatusID, err = kernel.UUIDFromBytes(fromID[:]); err != nil {
			return nil, err
		}
		if v.ToStatusID, err = kernel.UUIDFromBytes(toID[:]); err != nil {
			return nil, err
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
