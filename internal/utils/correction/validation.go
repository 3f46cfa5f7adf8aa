package correction

import (
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
)

// ValidateDomain checks that both months are exact keys of the series.
// No nearest-month substitution is attempted.
func ValidateDomain(series *domain.IndexSeries, start, end time.Time) error {
	minDate, maxDate, _ := series.Domain()
	for _, d := range []time.Time{start, end} {
		if !series.Contains(d) {
			return &apperrors.OutOfDomainError{
				IndexID:   series.IndexID,
				Requested: domain.MonthStart(d),
				Min:       minDate,
				Max:       maxDate,
			}
		}
	}
	return nil
}
