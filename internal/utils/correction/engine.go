// Package correction implements the monetary correction engine: date normalization,
// series domain validation and factor accumulation across currency eras.
package correction

import (
	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccumulatedRow pairs a series point with the cumulative factor after including it.
type AccumulatedRow struct {
	domain.SeriesPoint
	CumulativeFactor float64
}

// Accumulate walks window once in ascending date order keeping a running product
// of (1 + variation/100) seeded at 1. In inflation mode each row carries the running
// product; in deflation mode it carries its reciprocal. The final factor is the
// value of the last row.
func Accumulate(window []domain.SeriesPoint, isInflation bool) ([]AccumulatedRow, float64, error) {
	if len(window) == 0 {
		return nil, 0, &apperrors.EmptySeriesError{}
	}

	rows := make([]AccumulatedRow, len(window))
	product := 1.0
	for i, p := range window {
		product *= 1 + p.Variation/100
		factor := product
		if !isInflation {
			factor = 1 / product
		}
		rows[i] = AccumulatedRow{SeriesPoint: p, CumulativeFactor: factor}
	}
	return rows, rows[len(rows)-1].CumulativeFactor, nil
}

// PeriodChangePercent converts a final factor into the period change in percent.
// Deflation is reported as a negative number: -(1 - factor) * 100.
func PeriodChangePercent(finalFactor float64, isInflation bool) float64 {
	if isInflation {
		return (finalFactor - 1) * 100
	}
	return -(1 - finalFactor) * 100
}

// eraConversion returns the redenomination applied to the corrected value and the
// era the result is expressed in. Inflation converts the start era's currency to
// the real; deflation converts reais into the end era's currency.
func eraConversion(r domain.NormalizedRange) (domain.Ratio, domain.Era) {
	if r.IsInflation {
		return domain.ResolveEra(r.Start).ToReal, domain.CurrentEra()
	}
	target := domain.ResolveEra(r.End)
	return target.FromReal, target
}

// Compute runs a full correction of req against series. Any failure aborts the
// whole computation; no partial result is returned.
func Compute(req domain.CorrectionRequest, series *domain.IndexSeries) (*domain.CorrectionResult, error) {
	r, err := NormalizeDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := ValidateDomain(series, r.Start, r.End); err != nil {
		return nil, err
	}

	window := series.Slice(r.Earlier, r.Later)
	rows, finalFactor, err := Accumulate(window, r.IsInflation)
	if err != nil {
		return nil, &apperrors.EmptySeriesError{IndexID: series.IndexID, Earlier: r.Earlier, Later: r.Later}
	}
	// Same month on both ends: no time elapses, so the correction is a no-op.
	if r.Start.Equal(r.End) {
		rows[0].CumulativeFactor = 1
		finalFactor = 1
	}

	ratio, targetEra := eraConversion(r)
	resultRows := make([]domain.CorrectionRow, len(rows))
	for i, row := range rows {
		resultRows[i] = domain.CorrectionRow{
			Date:             row.Date,
			MonthlyVariation: row.Variation,
			CumulativeFactor: row.CumulativeFactor,
			CorrectedValue:   correctedValue(req.NominalValue, row.CumulativeFactor, ratio),
		}
	}

	return &domain.CorrectionResult{
		IndexID:             series.IndexID,
		Mode:                r.Mode(),
		Start:               r.Start,
		End:                 r.End,
		NominalValue:        req.NominalValue,
		Rows:                resultRows,
		FinalFactor:         finalFactor,
		PeriodChangePercent: PeriodChangePercent(finalFactor, r.IsInflation),
		CorrectedValue:      resultRows[len(resultRows)-1].CorrectedValue,
		NominalEra:          domain.ResolveEra(r.Start),
		TargetEra:           targetEra,
	}, nil
}

func correctedValue(nominal decimal.Decimal, factor float64, ratio domain.Ratio) decimal.Decimal {
	return ratio.Apply(nominal.Mul(decimal.NewFromFloat(factor)))
}
