package queries

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// DefaultAnalyticsWindowDays is the length of the window when no dates are given.
	DefaultAnalyticsWindowDays = 30
	// MaxAnalyticsWindowDays bounds how much history one request may scan.
	MaxAnalyticsWindowDays = 366

	dateLayout = "2006-01-02"
)

var ErrGetAnalyticsQueryIsNotConstructed = errors.New(
	"GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor",
)

// GetAnalyticsQuery asks for workflow analytics over [startDate, endDate], both
// inclusive calendar days in UTC. Either bound may be nil; see Window.
type GetAnalyticsQuery struct {
	startDate *time.Time
	endDate   *time.Time

	guard guard.ConstructorGuard
}

func NewGetAnalyticsQuery(startDate, endDate *time.Time) (GetAnalyticsQuery, error) {
	q := GetAnalyticsQuery{guard: guard.NewConstructorGuard()}
	if startDate != nil {
		d := truncateDay(*startDate)
		q.startDate = &d
	}
	if endDate != nil {
		d := truncateDay(*endDate)
		q.endDate = &d
	}

	if q.startDate != nil && q.endDate != nil && q.startDate.After(*q.endDate) {
		return GetAnalyticsQuery{}, errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("%s is after endDate %s", q.startDate.Format(dateLayout), q.endDate.Format(dateLayout)))
	}

	return q, nil
}

func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// Window resolves the requested days against today.
//
// A missing end date means today; a missing start date means the trailing
// DefaultAnalyticsWindowDays ending at the end date. The returned end is exclusive:
// midnight after the last included day.
func (q GetAnalyticsQuery) Window(now time.Time) (Window, error) {
	end := truncateDay(now)
	if q.endDate != nil {
		end = *q.endDate
	}
	start := end.AddDate(0, 0, -(DefaultAnalyticsWindowDays - 1))
	if q.startDate != nil {
		start = *q.startDate
	}

	if start.After(end) {
		return Window{}, errs.NewValueIsInvalidErrorWithCause("startDate",
			fmt.Errorf("%s is after endDate %s", start.Format(dateLayout), end.Format(dateLayout)))
	}

	w := Window{Start: start, End: end.AddDate(0, 0, 1)}
	if days := w.Days(); days > MaxAnalyticsWindowDays {
		return Window{}, errs.NewValueIsOutOfRangeError("window days", days, 1, MaxAnalyticsWindowDays)
	}
	return w, nil
}

// Window is a half-open [Start, End) range of whole UTC days.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days is the number of calendar days covered.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start) / (24 * time.Hour))
}

// LastDay is the final included day.
func (w Window) LastDay() time.Time {
	return w.End.AddDate(0, 0, -1)
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
