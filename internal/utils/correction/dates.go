package correction

import (
	"strings"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
)

// monthLayouts are tried in order by ParseMonth.
var monthLayouts = []string{
	"2006-01",
	"01-2006",
	"01/2006",
	"2006-01-02",
	time.RFC3339,
}

// ParseMonth parses a user-supplied date and truncates it to the first day of its month.
// Accepted forms are YYYY-MM, MM-YYYY, MM/YYYY, YYYY-MM-DD and RFC 3339.
func ParseMonth(field, input string) (time.Time, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return time.Time{}, &apperrors.InvalidDateError{Field: field}
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return domain.MonthStart(t), nil
		}
	}
	return time.Time{}, &apperrors.InvalidDateError{Field: field, Input: input}
}

// NormalizeDates truncates both dates to month start and orders them.
// Equal months are treated as inflation, which yields a factor of 1.
func NormalizeDates(start, end time.Time) (domain.NormalizedRange, error) {
	if start.IsZero() {
		return domain.NormalizedRange{}, &apperrors.InvalidDateError{Field: "startDate"}
	}
	if end.IsZero() {
		return domain.NormalizedRange{}, &apperrors.InvalidDateError{Field: "endDate"}
	}

	s := domain.MonthStart(start)
	e := domain.MonthStart(end)

	r := domain.NormalizedRange{
		Start:       s,
		End:         e,
		Earlier:     s,
		Later:       e,
		IsInflation: !s.After(e),
	}
	if !r.IsInflation {
		r.Earlier, r.Later = e, s
	}
	return r, nil
}
