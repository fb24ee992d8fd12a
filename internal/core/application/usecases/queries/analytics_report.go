package queries

import (
	"time"

	"storefront/internal/core/domain/model/status"
	"storefront/internal/core/domain/services"
)

// AnalyticsReport is the response of GetAnalyticsQuery.
type AnalyticsReport struct {
	Period              Period            `json:"period"`
	OrderCountsByStatus []StatusCount     `json:"orderCountsByStatus"`
	TimeInStatus        []StatusTime      `json:"timeInStatus"`
	Bottlenecks         []StatusTime      `json:"bottlenecks"`
	TransitionMatrix    []TransitionCount `json:"transitionMatrix"`
	TimeSeries          []DailyCount      `json:"timeSeries"`
	Summary             Summary           `json:"summary"`
}

type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// StatusCount is the number of orders created in the window now sitting in a status.
// Name and Color are empty when the status no longer exists.
type StatusCount struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Count  int64  `json:"count"`
}

type StatusTime struct {
	Status      string             `json:"status"`
	Name        string             `json:"name"`
	Samples     int                `json:"samples"`
	AverageTime services.DwellTime `json:"averageTime"`
}

type TransitionCount struct {
	From  string `json:"fromStatus"`
	To    string `json:"toStatus"`
	Count int64  `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Summary holds the headline figures. AverageProcessingTime is the exact mean of
// per-order totals; WeightedAverageProcessingTime is sum(avgDwell * orderCount) /
// totalOrders, kept for existing reports.
type Summary struct {
	TotalOrders                   int64              `json:"totalOrders"`
	ActiveStatuses                int64              `json:"activeStatuses"`
	TotalStatuses                 int64              `json:"totalStatuses"`
	AverageProcessingTime         services.DwellTime `json:"averageProcessingTime"`
	WeightedAverageProcessingTime services.DwellTime `json:"weightedAverageProcessingTime"`
}

// analyticsInput is everything read from storage for one report.
type analyticsInput struct {
	window        Window
	statusNames   map[status.Slug]string
	orderCounts   []StatusCount
	history       []services.HistoryPoint
	transitions   []TransitionCount
	createdPerDay map[string]int64
}

// buildAnalyticsReport is pure: identical input and now give an identical report.
func buildAnalyticsReport(in analyticsInput, calc services.DwellCalculator, now time.Time) AnalyticsReport {
	dwell := calc.Calculate(in.history, now)

	report := AnalyticsReport{
		Period: Period{
			StartDate: in.window.Start.Format(dateLayout),
			EndDate:   in.window.LastDay().Format(dateLayout),
		},
		OrderCountsByStatus: in.orderCounts,
		TimeInStatus:        make([]StatusTime, 0, len(dwell.ByStatus)),
		TransitionMatrix:    in.transitions,
		TimeSeries:          make([]DailyCount, 0, in.window.Days()),
	}
	if report.OrderCountsByStatus == nil {
		report.OrderCountsByStatus = []StatusCount{}
	}
	if report.TransitionMatrix == nil {
		report.TransitionMatrix = []TransitionCount{}
	}

	for _, d := range dwell.ByStatus {
		report.TimeInStatus = append(report.TimeInStatus, in.statusTime(d))
	}

	bottlenecks := services.Bottlenecks(dwell.ByStatus, services.DefaultBottleneckLimit)
	report.Bottlenecks = make([]StatusTime, 0, len(bottlenecks))
	for _, d := range bottlenecks {
		report.Bottlenecks = append(report.Bottlenecks, in.statusTime(d))
	}

	for day := in.window.Start; day.Before(in.window.End); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		report.TimeSeries = append(report.TimeSeries, DailyCount{Date: key, Count: in.createdPerDay[key]})
	}

	counts := make(map[status.Slug]int64, len(in.orderCounts))
	for _, c := range in.orderCounts {
		counts[status.Slug(c.Status)] = c.Count
		report.Summary.TotalOrders += c.Count
		if c.Count > 0 {
			report.Summary.ActiveStatuses++
		}
	}
	report.Summary.TotalStatuses = int64(len(in.statusNames))
	report.Summary.AverageProcessingTime = services.NewDwellTime(dwell.AverageProcessingTime())
	report.Summary.WeightedAverageProcessingTime = services.NewDwellTime(
		services.WeightedAverageProcessingTime(dwell.ByStatus, counts, report.Summary.TotalOrders))

	return report
}

func (in analyticsInput) statusTime(d services.StatusDwell) StatusTime {
	return StatusTime{
		Status:      d.Status.String(),
		Name:        in.statusNames[d.Status],
		Samples:     d.Samples,
		AverageTime: services.NewDwellTime(d.Average()),
	}
}
