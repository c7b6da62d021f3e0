package percentage

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Percent is an exact percentage, 100 meaning the whole base.
type Percent struct {
	value decimal.Decimal
}

// P returns the Percent for value.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// Equal reports whether p and q are the same percentage within 1e-4.
func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	precision := decimal.New(1, -4)
	return p.value.Sub(q.value).Abs().LessThan(precision)
}

// Exact reports whether p and q are strictly identical.
func (p Percent) Exact(q Percent) bool { return p.value.Equal(q.value) }

func (p Percent) Add(q Percent) Percent             { return Percent{value: p.value.Add(q.value)} }
func (p Percent) GreaterThanOrEqual(q Percent) bool { return p.value.GreaterThanOrEqual(q.value) }
func (p Percent) Decimal() decimal.Decimal          { return p.value }
func (p Percent) StringFixed(places int32) string   { return p.value.StringFixed(places) }

// String returns the percentage with two decimals and a percent sign.
func (p Percent) String() string {
	return p.value.StringFixed(2) + "%"
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}

// full is the percentage at which a ledger is full.
var full = Percent{value: hundred}

// sumPercentages returns the sum of all entries percentage.
func sumPercentages(entries []Entry) Percent {
	var total Percent
	for _, e := range entries {
		total = total.Add(e.Percentage)
	}
	return total
}
