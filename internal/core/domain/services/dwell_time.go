package services

import (
	"math"
	"strconv"
	"time"
)

const day = 24 * time.Hour

// DwellTime is a duration prepared for reports.
type DwellTime struct {
	Milliseconds int64   `json:"milliseconds"`
	Hours        float64 `json:"hours"`
	Days         float64 `json:"days"`
	Formatted    string  `json:"formatted"`
}

func NewDwellTime(d time.Duration) DwellTime {
	return DwellTime{
		Milliseconds: d.Milliseconds(),
		Hours:        round2(d.Hours()),
		Days:         round2(float64(d) / float64(day)),
		Formatted:    FormatDuration(d),
	}
}

// FormatDuration renders d in days when it is at least a day, in hours when it is at
// least an hour, and in minutes otherwise. Values are rounded to two decimals.
//
//	FormatDuration(36 * time.Hour)   // "1.5 days"
//	FormatDuration(3 * time.Hour)    // "3 hours"
//	FormatDuration(45 * time.Minute) // "45 minutes"
func FormatDuration(d time.Duration) string {
	switch {
	case d >= day:
		return label(float64(d)/float64(day), "day")
	case d >= time.Hour:
		return label(d.Hours(), "hour")
	default:
		return label(d.Minutes(), "minute")
	}
}

func label(v float64, unit string) string {
	v = round2(v)
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == 1 {
		return s + " " + unit
	}
	return s + " " + unit + "s"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
