package percentage

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Amount is an exact numeric value: a base, a partial value, or a sum of them.
type Amount struct {
	value decimal.Decimal
}

// A returns the Amount for value.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func (a Amount) Equal(b Amount) bool             { return a.value.Equal(b.value) }
func (a Amount) Add(b Amount) Amount             { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount             { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) IsZero() bool                    { return a.value.IsZero() }
func (a Amount) IsPositive() bool                { return a.value.IsPositive() }
func (a Amount) Decimal() decimal.Decimal        { return a.value }
func (a Amount) StringFixed(places int32) string { return a.value.StringFixed(places) }
func (a Amount) String() string                  { return a.value.String() }

// MarshalJSON implements the json.Marshaler interface.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

func (a *Amount) UnmarshalJSON(decimalBytes []byte) error {
	return a.value.UnmarshalJSON(decimalBytes)
}

// ParseAmount parses a number typed by a user.
//
// Surrounding blanks are ignored, and a single comma is read as the decimal
// point when no dot is present ("12,5" is 12.5).
func ParseAmount(s string) (Amount, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Amount{}, fmt.Errorf("%w: empty value", ErrInvalidInput)
	}
	if strings.Count(text, ",") == 1 && !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
	}
	return Amount{value: d}, nil
}

// Number converts v into an Amount.
//
// Integers, floats, decimals, Amounts and numeric text are accepted. NaN and
// infinite floats, blank or unparsable text, and any other type fail with
// ErrInvalidInput.
func Number(v any) (Amount, error) {
	switch n := v.(type) {
	case Amount:
		return n, nil
	case *Amount:
		if n == nil {
			return Amount{}, fmt.Errorf("%w: nil value", ErrInvalidInput)
		}
		return *n, nil
	case decimal.Decimal:
		return A(n), nil
	case int:
		return A(n), nil
	case int8:
		return A(int64(n)), nil
	case int16:
		return A(int64(n)), nil
	case int32:
		return A(n), nil
	case int64:
		return A(n), nil
	case uint:
		return A(n), nil
	case uint8:
		return A(uint64(n)), nil
	case uint16:
		return A(uint64(n)), nil
	case uint32:
		return A(n), nil
	case uint64:
		return A(n), nil
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return Amount{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, n)
		}
		return A(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return Amount{}, fmt.Errorf("%w: %v is not a finite number", ErrInvalidInput, n)
		}
		return A(n), nil
	case string:
		return ParseAmount(n)
	case nil:
		return Amount{}, fmt.Errorf("%w: missing value", ErrInvalidInput)
	default:
		return Amount{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, v)
	}
}

// sumValues returns the sum of all entries value.
func sumValues(entries []Entry) Amount {
	var total Amount
	for _, e := range entries {
		total = total.Add(e.Value)
	}
	return total
}
