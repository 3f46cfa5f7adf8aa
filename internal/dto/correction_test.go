package dto

import (
	"testing"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/SscSPs/monetary_correction_app/internal/utils"
	"github.com/SscSPs/monetary_correction_app/internal/utils/correction"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrectionRequest_ToDomain(t *testing.T) {
	value := decimal.RequireFromString("100.00")
	req := CorrectionRequest{IndexID: "ipca", StartDate: "01-2024", EndDate: "2024-03-15", NominalValue: &value}

	got, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "ipca", got.IndexID)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got.EndDate)
	assert.True(t, value.Equal(got.NominalValue))
}

func TestCorrectionRequest_ToDomain_InvalidDates(t *testing.T) {
	value := decimal.NewFromInt(1)

	_, err := CorrectionRequest{IndexID: "IPCA", EndDate: "2024-03", NominalValue: &value}.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "startDate")

	_, err = CorrectionRequest{IndexID: "IPCA", StartDate: "2024-01", EndDate: "2024-13", NominalValue: &value}.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "endDate")
}

func TestToCorrectionResponse(t *testing.T) {
	series := domain.NewIndexSeries("IPCA", []domain.SeriesPoint{
		{Date: time.Date(1994, time.June, 1, 0, 0, 0, 0, time.UTC), Variation: 10},
		{Date: time.Date(1994, time.July, 1, 0, 0, 0, 0, time.UTC), Variation: 10},
	})
	result, err := correction.Compute(domain.CorrectionRequest{
		IndexID:      "IPCA",
		StartDate:    time.Date(1994, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(1994, time.July, 1, 0, 0, 0, 0, time.UTC),
		NominalValue: decimal.NewFromInt(2750),
	}, series)
	require.NoError(t, err)

	res := ToCorrectionResponse(result, utils.NewDisplayFormatter("pt-BR"))

	assert.Equal(t, "INFLATION", res.Mode)
	assert.Equal(t, "1994-06", res.StartDate)
	assert.Equal(t, "1994-07", res.EndDate)
	assert.Equal(t, "CR$ 2.750,00", res.NominalValueDisplay)
	assert.Equal(t, "R$ 1,21", res.CorrectedValueDisplay)
	assert.Equal(t, "21,00 %", res.PeriodChangeDisplay)
	assert.Equal(t, "CRUZEIRO_REAL", res.NominalEra.Code)
	assert.Equal(t, "REAL", res.TargetEra.Code)
	assert.Nil(t, res.TargetEra.UpperBound)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, "1994-06", res.Rows[0].Date)
	assert.Equal(t, "R$ 1,10", res.Rows[0].CorrectedValueDisplay)
}

func TestToEraResponse(t *testing.T) {
	res := ToEraResponse(domain.ResolveEra(time.Date(1993, time.December, 1, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "CRUZEIRO_REAL", res.Code)
	require.NotNil(t, res.UpperBound)
	assert.Equal(t, "1994-07-01", *res.UpperBound)
	assert.Equal(t, "1/2750", res.ToReal)
	assert.Equal(t, "2750/1", res.FromReal)
}

func TestToComparisonResponse(t *testing.T) {
	windows := []domain.IndexWindow{{
		IndexID:           "IGP_M",
		Name:              "IGP-M",
		AccumulatedFactor: 1.0201,
		Points: []domain.SeriesPoint{
			{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), Variation: 1},
			{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), Variation: 1},
		},
	}}

	res := ToComparisonResponse(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), windows)

	assert.Equal(t, "2024-02", res.Start)
	assert.Equal(t, "2024-03", res.End)
	require.Len(t, res.Indices, 1)
	assert.InDelta(t, 2.01, res.Indices[0].PeriodChangePercent, 1e-9)
	assert.Equal(t, "2024-02", res.Indices[0].Points[0].Date)
}
