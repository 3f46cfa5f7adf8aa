package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDisplayLocale is used when no valid locale is configured.
var DefaultDisplayLocale = language.BrazilianPortuguese

// FormatWithPrecision formats an amount with the given precision
// Example: amount 101.7294768 with precision 2 returns "101.73"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// DisplayFormatter renders amounts for people, using the grouping and decimal
// separators of its locale (pt-BR: "1.234,56").
type DisplayFormatter struct {
	printer *message.Printer
}

// NewDisplayFormatter creates a formatter for a BCP 47 tag such as "pt-BR".
// Unparseable tags fall back to DefaultDisplayLocale.
func NewDisplayFormatter(locale string) DisplayFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = DefaultDisplayLocale
	}
	return DisplayFormatter{printer: message.NewPrinter(tag)}
}

// Money formats amount with two decimals prefixed by the era symbol.
// Example: 1234.5 with "R$" returns "R$ 1.234,50" in pt-BR
func (f DisplayFormatter) Money(amount decimal.Decimal, symbol string) string {
	value := f.printer.Sprintf("%.2f", amount.Round(2).InexactFloat64())
	if symbol == "" {
		return value
	}
	return symbol + " " + value
}

// Percent formats a percentage with two decimals, e.g. "-1,70 %".
func (f DisplayFormatter) Percent(v float64) string {
	return f.printer.Sprintf("%.2f %%", v)
}
