package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/etnz/percentage"
)

// Display precisions.
const (
	ValuePlaces       = 2 // partial values, totals and remaining
	PercentPlaces     = 5 // percentage of a single entry
	AccumulatedPlaces = 1 // running and total percentage
)

// FormatValue formats a value with two decimals.
//
// If currency is a currency code, the value is formatted the way that
// currency is usually written (symbol, separators and number of decimals).
func FormatValue(a percentage.Amount, currency string) string {
	if currency == "" {
		return a.StringFixed(ValuePlaces)
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := a.Decimal().Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatPercent formats the percentage of an entry, the way it is copied.
func FormatPercent(p percentage.Percent) string {
	return p.StringFixed(PercentPlaces)
}

// FormatAccumulated formats a running or total percentage.
func FormatAccumulated(p percentage.Percent) string {
	return p.StringFixed(AccumulatedPlaces) + "%"
}

// ShortID returns a short prefix of an entry id, enough to tell entries apart.
func ShortID(id string) string {
	const n = 8
	if len(id) <= n {
		return id
	}
	return id[:n]
}
