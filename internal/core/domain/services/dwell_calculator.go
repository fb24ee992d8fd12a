package services

import (
	"cmp"
	"slices"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/status"
)

// DefaultBottleneckLimit is how many statuses Bottlenecks returns by default.
const DefaultBottleneckLimit = 5

// HistoryPoint is the part of a status history row the calculator needs.
// Seq breaks ties between rows with the same timestamp.
type HistoryPoint struct {
	OrderID  kernel.UUID
	ToStatus status.Slug
	At       time.Time
	Seq      int64
}

// StatusDwell aggregates the time orders spent in one status.
type StatusDwell struct {
	Status  status.Slug
	Total   time.Duration
	Samples int
}

// Average is Total divided by Samples, or zero without samples.
func (s StatusDwell) Average() time.Duration {
	if s.Samples == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Samples)
}

// DwellReport is the outcome of one calculation.
type DwellReport struct {
	// ByStatus is sorted by slug.
	ByStatus []StatusDwell
	// OrderTotals is the summed dwell per order.
	OrderTotals map[kernel.UUID]time.Duration
}

// AverageProcessingTime is the exact mean of per-order totals.
func (r DwellReport) AverageProcessingTime() time.Duration {
	if len(r.OrderTotals) == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range r.OrderTotals {
		sum += d
	}
	return sum / time.Duration(len(r.OrderTotals))
}

// Dwell returns the aggregate for slug, if any.
func (r DwellReport) Dwell(slug status.Slug) (StatusDwell, bool) {
	i, found := slices.BinarySearchFunc(r.ByStatus, slug, func(d StatusDwell, s status.Slug) int {
		return cmp.Compare(d.Status, s)
	})
	if !found {
		return StatusDwell{}, false
	}
	return r.ByStatus[i], true
}

// DwellCalculator walks each order's history pairwise.
//
// For entry i the dwell is time(i+1) - time(i); the last entry of an order is still
// open and is measured up to now. Negative spans (clock skew) count as zero.
type DwellCalculator struct{}

func NewDwellCalculator() DwellCalculator {
	return DwellCalculator{}
}

// Calculate does not modify points. The result depends only on points and now.
func (DwellCalculator) Calculate(points []HistoryPoint, now time.Time) DwellReport {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b HistoryPoint) int {
		if c := cmp.Compare(a.OrderID.String(), b.OrderID.String()); c != 0 {
			return c
		}
		if c := a.At.Compare(b.At); c != 0 {
			return c
		}
		return cmp.Compare(a.Seq, b.Seq)
	})

	perStatus := make(map[status.Slug]*StatusDwell)
	totals := make(map[kernel.UUID]time.Duration)

	for i, p := range sorted {
		end := now
		if i+1 < len(sorted) && sorted[i+1].OrderID.IsEqual(p.OrderID) {
			end = sorted[i+1].At
		}
		span := max(end.Sub(p.At), 0)

		agg, ok := perStatus[p.ToStatus]
		if !ok {
			agg = &StatusDwell{Status: p.ToStatus}
			perStatus[p.ToStatus] = agg
		}
		agg.Total += span
		agg.Samples++
		totals[p.OrderID] += span
	}

	byStatus := make([]StatusDwell, 0, len(perStatus))
	for _, agg := range perStatus {
		byStatus = append(byStatus, *agg)
	}
	slices.SortFunc(byStatus, func(a, b StatusDwell) int {
		return cmp.Compare(a.Status, b.Status)
	})

	return DwellReport{ByStatus: byStatus, OrderTotals: totals}
}

// Bottlenecks returns up to limit statuses with a non-zero average, longest first.
// Equal averages are ordered by slug.
func Bottlenecks(dwells []StatusDwell, limit int) []StatusDwell {
	ranked := make([]StatusDwell, 0, len(dwells))
	for _, d := range dwells {
		if d.Average() > 0 {
			ranked = append(ranked, d)
		}
	}
	slices.SortFunc(ranked, func(a, b StatusDwell) int {
		if c := cmp.Compare(b.Average(), a.Average()); c != 0 {
			return c
		}
		return cmp.Compare(a.Status, b.Status)
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// WeightedAverageProcessingTime computes sum(avgDwell_s * orderCount_s) / totalOrders.
// It approximates, and generally differs from, DwellReport.AverageProcessingTime.
func WeightedAverageProcessingTime(dwells []StatusDwell, orderCounts map[status.Slug]int64, totalOrders int64) time.Duration {
	if totalOrders <= 0 {
		return 0
	}
	var weighted float64
	for _, d := range dwells {
		weighted += float64(d.Average()) * float64(orderCounts[d.Status])
	}
	return time.Duration(weighted / float64(totalOrders))
}
