package percentage

import "fmt"

// InversePercentage returns the percentage that partial represents of total,
// that is (partial / total) * 100.
//
// The result is neither clamped nor rounded. It fails with ErrDivisionByZero
// if total is zero.
func InversePercentage(total, partial Amount) (Percent, error) {
	if total.IsZero() {
		return Percent{}, fmt.Errorf("computing percentage of %s: %w", partial, ErrDivisionByZero)
	}
	return Percent{value: partial.value.Div(total.value).Mul(hundred)}, nil
}

// Inverse is InversePercentage for loosely typed arguments.
//
// Both arguments are converted with Number first, so a non numeric one fails
// with ErrInvalidInput, even when total is zero.
func Inverse(total, partial any) (Percent, error) {
	t, err := Number(total)
	if err != nil {
		return Percent{}, fmt.Errorf("total: %w", err)
	}
	p, err := Number(partial)
	if err != nil {
		return Percent{}, fmt.Errorf("partial: %w", err)
	}
	return InversePercentage(t, p)
}
