package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/percentage"
	"github.com/etnz/percentage/renderer"
	"github.com/google/subcommands"
)

type calcCmd struct {
	base  string
	table bool
	out   io.Writer
}

func (*calcCmd) Name() string     { return "calc" }
func (*calcCmd) Synopsis() string { return "compute the percentage of partial values against a base" }
func (*calcCmd) Usage() string {
	return `pcalc calc -base <value> <partial>...

  Computes what percentage each partial value represents of the base value,
  with the running sum of percentages.

Usage Examples:
$ pcalc calc -base 3760 1200 940

`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "", "Base value (100%).")
	f.BoolVar(&c.table, "table", false, "Print a markdown table instead of plain lines.")
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.base == "" || f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a -base value and at least one partial value are required.")
		return subcommands.ExitUsageError
	}
	out := c.out
	if out == nil {
		out = os.Stdout
	}

	base, err := percentage.ParseAmount(c.base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: base value: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger := percentage.NewLedger()
	items := make([]renderer.Inverse, 0, f.NArg())
	for _, arg := range f.Args() {
		e, err := ledger.Add(base, arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
			return subcommands.ExitFailure
		}
		items = append(items, renderer.Inverse{
			Partial:     e.Value,
			Percentage:  e.Percentage,
			Accumulated: ledger.TotalPercentage(),
		})
		logger.Debug().Str("partial", e.Value.String()).Str("percentage", e.Percentage.Decimal().String()).Msg("computed")
	}

	if c.table {
		printMarkdown(out, renderer.InverseMarkdown(base, items, *currency))
		return subcommands.ExitSuccess
	}
	for _, it := range items {
		fmt.Fprintf(out, "%s -> %s%% (sum %s)\n",
			renderer.FormatValue(it.Partial, *currency),
			renderer.FormatPercent(it.Percentage),
			renderer.FormatAccumulated(it.Accumulated))
	}
	return subcommands.ExitSuccess
}

// errorMessage returns the message displayed for an error of the percentage package.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, percentage.ErrInvalidInput):
		return fmt.Sprintf("please enter valid numbers for both the base and the partial value (%v).", err)
	case errors.Is(err, percentage.ErrDivisionByZero):
		return "the base value cannot be zero."
	default:
		return err.Error()
	}
}
