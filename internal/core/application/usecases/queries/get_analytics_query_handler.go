package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAnalyticsQueryHandler aggregates the status history into dwell times,
// bottlenecks, a transition matrix and a daily time series.
//
// It is read-only and sees committed data only; two calls over unchanged data with
// the same clock value return the same report.
//
// Example:
//
//	handler := NewGetAnalyticsQueryHandler(db, nil)
//	query, _ := NewGetAnalyticsQuery(nil, nil) // trailing 30 days
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, b := range report.Bottlenecks {
//	    fmt.Printf("%s: %s\n", b.Status, b.AverageTime.Formatted)
//	}
type GetAnalyticsQueryHandler struct {
	db         *gorm.DB
	calculator services.DwellCalculator
	now        func() time.Time
}

// NewGetAnalyticsQueryHandler uses time.Now when now is nil.
func NewGetAnalyticsQueryHandler(db *gorm.DB, now func() time.Time) GetAnalyticsQueryHandler {
	if now == nil {
		now = time.Now
	}
	return GetAnalyticsQueryHandler{
		db:         db,
		calculator: services.NewDwellCalculator(),
		now:        now,
	}
}

func (h GetAnalyticsQueryHandler) Handle(ctx context.Context, query GetAnalyticsQuery) (AnalyticsReport, error) {
	if err := query.Validate(); err != nil {
		return AnalyticsReport{}, err
	}

	now := h.now().UTC()
	window, err := query.Window(now)
	if err != nil {
		return AnalyticsReport{}, err
	}

	in := analyticsInput{window: window}
	db := h.db.WithContext(ctx)

	if in.statusNames, err = h.loadStatusNames(db); err != nil {
		return AnalyticsReport{}, err
	}
	if in.orderCounts, err = h.loadOrderCounts(db, window); err != nil {
		return AnalyticsReport{}, err
	}
	if in.history, err = h.loadHistory(db, window); err != nil {
		return AnalyticsReport{}, err
	}
	if in.transitions, err = h.loadTransitionMatrix(db, window); err != nil {
		return AnalyticsReport{}, err
	}
	if in.createdPerDay, err = h.loadCreatedPerDay(db, window); err != nil {
		return AnalyticsReport{}, err
	}

	return buildAnalyticsReport(in, h.calculator, now), nil
}

func (h GetAnalyticsQueryHandler) loadStatusNames(db *gorm.DB) (map[status.Slug]string, error) {
	var rows []struct {
		Slug string
		Name string
	}
	if err := db.Raw(`SELECT slug, name FROM order_statuses`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	names := make(map[status.Slug]string, len(rows))
	for _, r := range rows {
		names[status.Slug(r.Slug)] = r.Name
	}
	return names, nil
}

func (h GetAnalyticsQueryHandler) loadOrderCounts(db *gorm.DB, w Window) ([]StatusCount, error) {
	counts := make([]StatusCount, 0)
	err := db.Raw(`
		SELECT
			o.status AS status,
			COALESCE(s.name, '') AS name,
			COALESCE(s.color, '') AS color,
			COUNT(*) AS count
		FROM orders o
		LEFT JOIN order_statuses s ON s.slug = o.status
		WHERE o.created_at >= ? AND o.created_at < ?
		GROUP BY o.status, s.name, s.color
		ORDER BY count DESC, o.status
	`, w.Start, w.End).Scan(&counts).Error
	return counts, err
}

// loadHistory reads the complete history of every order with at least one row in
// the window, so dwell before and after the window edges is measured correctly.
func (h GetAnalyticsQueryHandler) loadHistory(db *gorm.DB, w Window) ([]services.HistoryPoint, error) {
	rows, err := db.Raw(`
		SELECT
			h.order_id,
			h.to_status,
			h.created_at,
			h.seq
		FROM order_status_history h
		WHERE h.order_id IN (
			SELECT DISTINCT order_id
			FROM order_status_history
			WHERE created_at >= ? AND created_at < ?
		)
		ORDER BY h.order_id, h.created_at, h.seq
	`, w.Start, w.End).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]services.HistoryPoint, 0)
	for rows.Next() {
		var (
			p        services.HistoryPoint
			orderID  uuid.UUID
			toStatus string
		)
		if err = rows.Scan(&orderID, &toStatus, &p.At, &p.Seq); err != nil {
			return nil, err
		}
		if p.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		p.ToStatus = status.Slug(toStatus)
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

func (h GetAnalyticsQueryHandler) loadTransitionMatrix(db *gorm.DB, w Window) ([]TransitionCount, error) {
	var rows []struct {
		FromStatus string
		ToStatus   string
		Count      int64
	}
	err := db.Raw(`
		SELECT
			from_status,
			to_status,
			COUNT(*) AS count
		FROM order_status_history
		WHERE from_status IS NOT NULL
			AND created_at >= ? AND created_at < ?
		GROUP BY from_status, to_status
		ORDER BY count DESC, from_status, to_status
	`, w.Start, w.End).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	matrix := make([]TransitionCount, 0, len(rows))
	for _, r := range rows {
		matrix = append(matrix, TransitionCount{From: r.FromStatus, To: r.ToStatus, Count: r.Count})
	}
	return matrix, nil
}

func (h GetAnalyticsQueryHandler) loadCreatedPerDay(db *gorm.DB, w Window) (map[string]int64, error) {
	var rows []struct {
		Day   string
		Count int64
	}
	err := db.Raw(`
		SELECT
			to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
			COUNT(*) AS count
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		GROUP BY day
	`, w.Start, w.End).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	perDay := make(map[string]int64, len(rows))
	for _, r := range rows {
		perDay[r.Day] = r.Count
	}
	return perDay, nil
}
