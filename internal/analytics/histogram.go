// Package analytics derives chart-ready views from an in-memory lead list.
//
// Every function is pure: inputs are never mutated and repeated calls over
// the same slice yield identical output. Leads whose CreatedAt is the zero
// time (the store had no parseable timestamp for them) are excluded from
// the time-bucketed views but still counted by the categorical breakdowns.
package analytics

import (
	"fmt"

	"github.com/jocross/leadboard/internal/model"
)

// BucketCount pairs a bucket label with its occurrence count.
type BucketCount struct {
	Label string `json:"name"`
	Value int    `json:"value"`
}

// weekdayNames is Sunday-first, matching time.Weekday ordering.
var weekdayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// HourlyHistogram counts leads by hour of day. The result always has
// exactly 24 entries labeled "0:00" through "23:00", zero-filled.
func HourlyHistogram(leads []model.Lead) []BucketCount {
	var counts [24]int
	for _, l := range leads {
		if l.CreatedAt.IsZero() {
			continue
		}
		counts[l.CreatedAt.Hour()]++
	}

	out := make([]BucketCount, 24)
	for h := range out {
		out[h] = BucketCount{Label: fmt.Sprintf("%d:00", h), Value: counts[h]}
	}
	return out
}

// WeekdayHistogram counts leads by weekday. The result always has exactly
// 7 entries in Sunday-first order, zero-filled.
func WeekdayHistogram(leads []model.Lead) []BucketCount {
	var counts [7]int
	for _, l := range leads {
		if l.CreatedAt.IsZero() {
			continue
		}
		counts[l.CreatedAt.Weekday()]++
	}

	out := make([]BucketCount, 7)
	for d := range out {
		out[d] = BucketCount{Label: weekdayNames[d], Value: counts[d]}
	}
	return out
}
