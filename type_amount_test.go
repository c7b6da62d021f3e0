package percentage

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input   string
		want    Amount
		wantErr bool
	}{
		{input: "3760", want: A(3760)},
		{input: "  12.5 ", want: A(12.5)},
		{input: "12,5", want: A(12.5)},
		{input: "-7", want: A(-7)},
		{input: "1e3", want: A(1000)},
		{input: "", wantErr: true},
		{input: "   ", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1,234.5", wantErr: true},
		{input: "1,2,3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidInput", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestPercent_Equal(t *testing.T) {
	if !P(33.33333).Equal(P(33.333331)) {
		t.Error("P(33.33333).Equal(P(33.333331)) = false, want true")
	}
	if P(33.33).Equal(P(33.34)) {
		t.Error("P(33.33).Equal(P(33.34)) = true, want false")
	}
}
