package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/monetary_correction_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, m time.Month, day int) time.Time {
	return time.Date(year, m, day, 0, 0, 0, 0, time.UTC)
}

func TestResolveEra(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		code   string
		symbol string
	}{
		{name: "1970 cruzeiro", date: date(1970, time.January, 1), code: "CRUZEIRO", symbol: "Cr$"},
		{name: "last cruzeiro day", date: date(1986, time.February, 28), code: "CRUZEIRO", symbol: "Cr$"},
		{name: "cruzado cutover", date: date(1986, time.March, 1), code: "CRUZADO", symbol: "Cz$"},
		{name: "cruzado novo cutover", date: date(1989, time.February, 1), code: "CRUZADO_NOVO", symbol: "NCz$"},
		{name: "cruzeiro returns", date: date(1990, time.April, 1), code: "CRUZEIRO_1990", symbol: "Cr$"},
		{name: "cruzeiro real", date: date(1993, time.August, 1), code: "CRUZEIRO_REAL", symbol: "CR$"},
		{name: "last cruzeiro real month", date: date(1994, time.June, 1), code: "CRUZEIRO_REAL", symbol: "CR$"},
		{name: "real cutover", date: date(1994, time.July, 1), code: "REAL", symbol: "R$"},
		{name: "far future", date: date(9999, time.December, 31), code: "REAL", symbol: "R$"},
		{name: "far past", date: date(1, time.January, 1), code: "CRUZEIRO", symbol: "Cr$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			era := domain.ResolveEra(tt.date)
			assert.Equal(t, tt.code, era.Code)
			assert.Equal(t, tt.symbol, era.Symbol)
		})
	}
}

func TestResolveEra_UsesCalendarDate(t *testing.T) {
	// 1994-06-30 22:00 in Brasília is already July in UTC; the calendar date decides.
	brt := time.FixedZone("BRT", -3*60*60)
	era := domain.ResolveEra(time.Date(1994, time.June, 30, 22, 0, 0, 0, brt))
	assert.Equal(t, "CRUZEIRO_REAL", era.Code)
}

func TestEras_PartitionDateLine(t *testing.T) {
	eras := domain.Eras()
	require.Len(t, eras, 6)

	open := 0
	for i, era := range eras {
		if era.IsOpenEnded() {
			open++
			assert.Equal(t, len(eras)-1, i, "only the last era may be open-ended")
			continue
		}
		if i > 0 {
			require.True(t, eras[i-1].UpperBound.Before(era.UpperBound), "eras must be ordered")
		}
		// every day between the previous bound and this one resolves to this era
		lower := date(1900, time.January, 1)
		if i > 0 {
			lower = eras[i-1].UpperBound
		}
		for d := lower; d.Before(era.UpperBound); d = d.AddDate(0, 0, 17) {
			assert.Equal(t, era.Code, domain.ResolveEra(d).Code, d.Format("2006-01-02"))
		}
		assert.Equal(t, era.Code, domain.ResolveEra(era.UpperBound.AddDate(0, 0, -1)).Code)
	}
	assert.Equal(t, 1, open)
}

func TestEras_ReturnsCopy(t *testing.T) {
	eras := domain.Eras()
	eras[0].Symbol = "XX"
	eras[0].UpperBound = date(1900, time.January, 1)
	assert.Equal(t, "Cr$", domain.Eras()[0].Symbol)
	assert.Equal(t, "CRUZEIRO", domain.ResolveEra(date(1985, time.January, 1)).Code)
}

func TestResolveEra_ReturnsCopy(t *testing.T) {
	resolved := domain.ResolveEra(date(1993, time.December, 1))
	resolved.UpperBound = date(1993, time.September, 1)

	current := domain.CurrentEra()
	current.UpperBound = date(2000, time.January, 1)

	assert.Equal(t, "CRUZEIRO_REAL", domain.ResolveEra(date(1993, time.December, 1)).Code)
	assert.Equal(t, date(1994, time.July, 1), domain.ResolveEra(date(1993, time.December, 1)).UpperBound)
	assert.Equal(t, "REAL", domain.ResolveEra(date(2024, time.March, 1)).Code)
	assert.True(t, domain.CurrentEra().IsOpenEnded())
}

func TestEraFactors(t *testing.T) {
	eras := domain.Eras()
	expectedDen := []int64{2_750_000_000_000, 2_750_000_000, 2_750_000, 2_750_000, 2_750, 1}
	for i, era := range eras {
		assert.Equal(t, domain.Ratio{Num: 1, Den: expectedDen[i]}, era.ToReal, era.Code)
		assert.Equal(t, domain.Ratio{Num: expectedDen[i], Den: 1}, era.FromReal, era.Code)
	}

	assert.Equal(t, 1/(1000.0*1000*1000*2750), eras[0].ToReal.Float64())
	assert.Equal(t, 1.0/2750, eras[4].ToReal.Float64())
	assert.True(t, domain.CurrentEra().ToReal.IsIdentity())
}

func TestRatio_Apply(t *testing.T) {
	amount := decimal.NewFromInt(5_500_000)

	toReal := domain.Ratio{Num: 1, Den: 2_750_000}
	assert.True(t, decimal.NewFromInt(2).Equal(toReal.Apply(amount)))

	fromReal := toReal.Inverse()
	assert.True(t, decimal.NewFromInt(2_750_000).Equal(fromReal.Apply(decimal.NewFromInt(1))))

	identity := domain.Ratio{Num: 1, Den: 1}
	assert.True(t, amount.Equal(identity.Apply(amount)))
	assert.Equal(t, "1/2750000", toReal.String())
}
