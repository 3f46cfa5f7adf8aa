package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ratioPrecision is the number of decimal places kept when a Ratio divides an amount.
const ratioPrecision = 24

// Ratio is an exact rational multiplier (Num/Den) used for currency redenominations.
type Ratio struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// Float64 returns the ratio as a float64 computed as float64(Num) / float64(Den).
func (r Ratio) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Inverse returns Den/Num.
func (r Ratio) Inverse() Ratio {
	return Ratio{Num: r.Den, Den: r.Num}
}

// IsIdentity reports whether the ratio is exactly 1.
func (r Ratio) IsIdentity() bool {
	return r.Num == r.Den
}

// Apply multiplies amount by Num and divides by Den, rounding to ratioPrecision places.
func (r Ratio) Apply(amount decimal.Decimal) decimal.Decimal {
	if r.IsIdentity() {
		return amount
	}
	scaled := amount.Mul(decimal.NewFromInt(r.Num))
	if r.Den == 1 {
		return scaled
	}
	return scaled.DivRound(decimal.NewFromInt(r.Den), ratioPrecision)
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Era represents one historical Brazilian currency regime.
// UpperBound is exclusive; the zero time marks the open-ended present currency.
// Era holds only values, so copies handed out never alias the era table.
type Era struct {
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	Symbol     string    `json:"symbol"`
	UpperBound time.Time `json:"upperBound"`
	ToReal     Ratio     `json:"toReal"`
	FromReal   Ratio     `json:"fromReal"`
}

// IsOpenEnded reports whether the era has no upper bound.
func (e Era) IsOpenEnded() bool {
	return e.UpperBound.IsZero()
}

// Redenomination ratios. 2750 is the cruzeiro real → real conversion;
// every earlier step divided by 1000.
const (
	realPerCruzeiroReal = 2750
	thousand            = 1000
)

func cutoff(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func eraWithDivisor(code, name, symbol string, upper time.Time, divisor int64) Era {
	toReal := Ratio{Num: 1, Den: divisor}
	return Era{
		Code:       code,
		Name:       name,
		Symbol:     symbol,
		UpperBound: upper,
		ToReal:     toReal,
		FromReal:   toReal.Inverse(),
	}
}

// eraTable is ordered by UpperBound ascending; the last entry is open-ended.
var eraTable = []Era{
	eraWithDivisor("CRUZEIRO", "Cruzeiro", "Cr$", cutoff(1986, time.March), thousand*thousand*thousand*realPerCruzeiroReal),
	eraWithDivisor("CRUZADO", "Cruzado", "Cz$", cutoff(1989, time.February), thousand*thousand*realPerCruzeiroReal),
	eraWithDivisor("CRUZADO_NOVO", "Cruzado Novo", "NCz$", cutoff(1990, time.April), thousand*realPerCruzeiroReal),
	eraWithDivisor("CRUZEIRO_1990", "Cruzeiro", "Cr$", cutoff(1993, time.August), thousand*realPerCruzeiroReal),
	eraWithDivisor("CRUZEIRO_REAL", "Cruzeiro Real", "CR$", cutoff(1994, time.July), realPerCruzeiroReal),
	eraWithDivisor("REAL", "Real", "R$", time.Time{}, 1),
}

// Eras returns a copy of the era table in chronological order.
func Eras() []Era {
	out := make([]Era, len(eraTable))
	copy(out, eraTable)
	return out
}

// CurrentEra returns the open-ended era (the real).
func CurrentEra() Era {
	return eraTable[len(eraTable)-1]
}

// ResolveEra returns the era whose half-open interval contains the calendar date of t.
// It never fails: dates at or after the last cutover resolve to the current era.
func ResolveEra(t time.Time) Era {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, era := range eraTable {
		if era.IsOpenEnded() || day.Before(era.UpperBound) {
			return era
		}
	}
	return CurrentEra()
}
