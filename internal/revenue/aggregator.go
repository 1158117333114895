// Package revenue turns raw ticket-sale records into the chart series
// the console's revenue panel renders.
package revenue

import (
	"fmt"
	"time"

	"github.com/rafflehouse/admin-backend/internal/models"
	"github.com/rafflehouse/admin-backend/internal/timeconv"
)

// Granularity selects the bucketing unit for aggregation.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// ParseGranularity maps a query-string value onto a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case Daily, Weekly, Monthly:
		return Granularity(s), nil
	case "":
		return Daily, nil
	default:
		return "", fmt.Errorf("unknown granularity %q", s)
	}
}

// Series is a chart-ready label/value pairing. Values is aligned
// positionally with Labels.
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"data"`
}

// EmptySeries returns a series that encodes as empty JSON arrays, the
// soft-fail result callers render as an empty chart.
func EmptySeries() Series {
	return Series{Labels: []string{}, Values: []float64{}}
}

// Aggregate groups sales by the label for the chosen granularity and
// sums price per label. Sales whose createdAt is missing (epoch zero
// after coercion) are skipped without error; a missing price counts as
// zero. Labels come back in natural order, so "Week 2" sorts before
// "Week 10".
func Aggregate(sales []models.TicketSale, g Granularity) Series {
	totals := make(map[string]float64)
	for _, sale := range sales {
		if timeconv.IsEpochZero(sale.CreatedAt) {
			continue
		}
		totals[bucketLabel(sale.CreatedAt, g)] += sale.Price
	}

	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sortNatural(labels)

	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = totals[label]
	}
	return Series{Labels: labels, Values: values}
}

// bucketLabel computes the chart label for one sale.
//
// Daily deliberately uses the weekday name rather than the calendar
// date: sales from the same weekday of different weeks share a bucket.
// The console has always charted it that way, so the aliasing is kept.
func bucketLabel(t time.Time, g Granularity) string {
	switch g {
	case Weekly:
		return fmt.Sprintf("Week %d", weekOfYear(t))
	case Monthly:
		return t.Format("Jan")
	default:
		return t.Format("Mon")
	}
}

// weekOfYear buckets a date into a week number using
// ceil((dayOfYear + jan1Weekday + 1) / 7), with dayOfYear zero-based
// and weekdays counted from Sunday. Not ISO 8601; it matches the
// chart's historical labels.
func weekOfYear(t time.Time) int {
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	dayOfYear := t.YearDay() - 1
	return (dayOfYear + int(jan1.Weekday()) + 1 + 6) / 7
}
