package domain

import (
	"sort"
	"time"
)

// SeriesPoint is one monthly percentage variation of an index.
// Date is the first day of the month (UTC) the variation refers to.
type SeriesPoint struct {
	Date      time.Time `json:"date"`
	Variation float64   `json:"variation"`
}

// IndexSeries is a read-only, date-ordered snapshot of an index's monthly variations.
type IndexSeries struct {
	IndexID   string
	FetchedAt time.Time
	points    []SeriesPoint
	positions map[time.Time]int
}

// MonthStart truncates t to the first day of its month at 00:00 UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NewIndexSeries builds a series from unordered points. Dates are truncated to
// month start; when two points fall in the same month the later one in the input wins.
func NewIndexSeries(indexID string, points []SeriesPoint) *IndexSeries {
	byMonth := make(map[time.Time]float64, len(points))
	for _, p := range points {
		byMonth[MonthStart(p.Date)] = p.Variation
	}

	ordered := make([]SeriesPoint, 0, len(byMonth))
	for date, v := range byMonth {
		ordered = append(ordered, SeriesPoint{Date: date, Variation: v})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	positions := make(map[time.Time]int, len(ordered))
	for i, p := range ordered {
		positions[p.Date] = i
	}

	return &IndexSeries{
		IndexID:   indexID,
		points:    ordered,
		positions: positions,
	}
}

// Len returns the number of monthly points.
func (s *IndexSeries) Len() int {
	return len(s.points)
}

// Points returns a copy of all points in ascending date order.
func (s *IndexSeries) Points() []SeriesPoint {
	out := make([]SeriesPoint, len(s.points))
	copy(out, s.points)
	return out
}

// Contains reports whether the month of t is an exact key of the series.
func (s *IndexSeries) Contains(t time.Time) bool {
	_, ok := s.positions[MonthStart(t)]
	return ok
}

// Domain returns the first and last available months. ok is false for an empty series.
func (s *IndexSeries) Domain() (minDate, maxDate time.Time, ok bool) {
	if len(s.points) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.points[0].Date, s.points[len(s.points)-1].Date, true
}

// Slice returns the points whose month lies in [earlier, later], ascending.
// The returned slice is a copy.
func (s *IndexSeries) Slice(earlier, later time.Time) []SeriesPoint {
	from := MonthStart(earlier)
	to := MonthStart(later)
	if to.Before(from) {
		return []SeriesPoint{}
	}

	lo := sort.Search(len(s.points), func(i int) bool {
		return !s.points[i].Date.Before(from)
	})
	hi := sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Date.After(to)
	})

	out := make([]SeriesPoint, hi-lo)
	copy(out, s.points[lo:hi])
	return out
}
