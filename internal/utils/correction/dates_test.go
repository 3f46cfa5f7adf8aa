package correction

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{name: "year first", input: "2024-03", want: month(2024, time.March)},
		{name: "month first", input: "03-2024", want: month(2024, time.March)},
		{name: "slash", input: "03/2024", want: month(2024, time.March)},
		{name: "full date truncated", input: "2024-03-27", want: month(2024, time.March)},
		{name: "rfc3339", input: "1986-02-15T10:00:00-03:00", want: month(1986, time.February)},
		{name: "whitespace", input: "  1994-07 ", want: month(1994, time.July)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonth("startDate", tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth_Invalid(t *testing.T) {
	for _, input := range []string{"", "2024-13", "March 2024", "24-03"} {
		_, err := ParseMonth("endDate", input)
		require.Error(t, err, input)

		var dateErr *apperrors.InvalidDateError
		require.True(t, errors.As(err, &dateErr), input)
		assert.Equal(t, "endDate", dateErr.Field)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
}

func TestNormalizeDates(t *testing.T) {
	start := time.Date(2020, time.May, 31, 23, 0, 0, 0, time.UTC)
	end := time.Date(2019, time.February, 2, 0, 0, 0, 0, time.UTC)

	r, err := NormalizeDates(start, end)
	require.NoError(t, err)

	assert.Equal(t, month(2020, time.May), r.Start)
	assert.Equal(t, month(2019, time.February), r.End)
	assert.Equal(t, month(2019, time.February), r.Earlier)
	assert.Equal(t, month(2020, time.May), r.Later)
	assert.False(t, r.IsInflation)
	assert.Equal(t, domain.Deflation, r.Mode())
}

func TestNormalizeDates_EqualMonthsAreInflation(t *testing.T) {
	r, err := NormalizeDates(
		time.Date(2001, time.October, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2001, time.October, 3, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.True(t, r.IsInflation)
	assert.Equal(t, r.Earlier, r.Later)
}

func TestNormalizeDates_ZeroDate(t *testing.T) {
	_, err := NormalizeDates(month(2001, time.October), time.Time{})
	var dateErr *apperrors.InvalidDateError
	require.True(t, errors.As(err, &dateErr))
	assert.Equal(t, "endDate", dateErr.Field)
}

func TestValidateDomain(t *testing.T) {
	series := sampleSeries()

	assert.NoError(t, ValidateDomain(series, month(2024, time.January), month(2024, time.March)))

	// one month past the end
	err := ValidateDomain(series, month(2024, time.January), month(2024, time.April))
	var domainErr *apperrors.OutOfDomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, month(2024, time.January), domainErr.Min)
	assert.Equal(t, month(2024, time.March), domainErr.Max)
	assert.ErrorIs(t, err, apperrors.ErrOutOfDomain)

	// one month before the start
	err = ValidateDomain(series, month(2023, time.December), month(2024, time.February))
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, month(2023, time.December), domainErr.Requested)
}

func TestValidateDomain_GapInsideRange(t *testing.T) {
	series := domain.NewIndexSeries("IGP_M", []domain.SeriesPoint{
		{Date: month(2024, time.January), Variation: 0.1},
		{Date: month(2024, time.March), Variation: 0.2},
	})

	err := ValidateDomain(series, month(2024, time.February), month(2024, time.March))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOutOfDomain)
}

func TestValidateDomain_EmptySeries(t *testing.T) {
	err := ValidateDomain(domain.NewIndexSeries("INPC", nil), month(2024, time.January), month(2024, time.January))
	var domainErr *apperrors.OutOfDomainError
	require.True(t, errors.As(err, &domainErr))
	assert.True(t, domainErr.Min.IsZero())
	assert.Contains(t, err.Error(), "has no data")
}
