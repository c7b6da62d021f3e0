package cmd

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func runCalc(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var out bytes.Buffer
	c := &calcCmd{out: &out}
	f := flag.NewFlagSet("calc", flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return out.String(), status
}

func TestCalcCmd(t *testing.T) {
	got, status := runCalc(t, "-base", "3760", "1200", "940")
	if status != subcommands.ExitSuccess {
		t.Fatalf("calc status = %v, want success", status)
	}
	want := "1200.00 -> 31.91489% (sum 31.9%)\n940.00 -> 25.00000% (sum 56.9%)\n"
	if got != want {
		t.Errorf("calc output:\n%q\nwant:\n%q", got, want)
	}
}

func TestCalcCmd_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{name: "no base", args: []string{"12"}, want: subcommands.ExitUsageError},
		{name: "no partial", args: []string{"-base", "12"}, want: subcommands.ExitUsageError},
		{name: "invalid base", args: []string{"-base", "abc", "1"}, want: subcommands.ExitUsageError},
		{name: "invalid partial", args: []string{"-base", "10", "1", "abc"}, want: subcommands.ExitFailure},
		{name: "zero base", args: []string{"-base", "0", "1"}, want: subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, status := runCalc(t, tc.args...); status != tc.want {
				t.Errorf("calc %v status = %v, want %v", tc.args, status, tc.want)
			}
		})
	}
}
