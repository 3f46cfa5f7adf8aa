package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CorrectionMode is the accumulation direction of a correction.
type CorrectionMode string

const (
	// Inflation corrects a past amount forward (start <= end).
	Inflation CorrectionMode = "INFLATION"
	// Deflation corrects an amount backward (start > end).
	Deflation CorrectionMode = "DEFLATION"
)

// CorrectionRequest holds the inputs of a monetary correction.
type CorrectionRequest struct {
	IndexID      string
	StartDate    time.Time
	EndDate      time.Time
	NominalValue decimal.Decimal
}

// NormalizedRange is the month-truncated, ordered view of a request's dates.
type NormalizedRange struct {
	Start       time.Time
	End         time.Time
	Earlier     time.Time
	Later       time.Time
	IsInflation bool
}

// Mode returns the correction mode implied by the range.
func (r NormalizedRange) Mode() CorrectionMode {
	if r.IsInflation {
		return Inflation
	}
	return Deflation
}

// CorrectionRow is one month of the correction table.
type CorrectionRow struct {
	Date             time.Time       `json:"date"`
	MonthlyVariation float64         `json:"monthlyVariation"`
	CumulativeFactor float64         `json:"cumulativeFactor"`
	CorrectedValue   decimal.Decimal `json:"correctedValue"`
}

// CorrectionResult is the outcome of a correction. It is created per request and
// must not be modified by callers.
type CorrectionResult struct {
	IndexID             string
	Mode                CorrectionMode
	Start               time.Time
	End                 time.Time
	NominalValue        decimal.Decimal
	Rows                []CorrectionRow
	FinalFactor         float64
	PeriodChangePercent float64
	CorrectedValue      decimal.Decimal
	// NominalEra is the currency the nominal value is expressed in (era of Start).
	NominalEra Era
	// TargetEra is the currency the corrected value is expressed in.
	TargetEra Era
}

// IndexWindow is the slice of one index over a period, used to compare indices.
type IndexWindow struct {
	IndexID           string        `json:"indexID"`
	Name              string        `json:"name"`
	Points            []SeriesPoint `json:"points"`
	AccumulatedFactor float64       `json:"accumulatedFactor"`
}
