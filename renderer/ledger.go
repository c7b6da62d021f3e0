package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/percentage"
	md "github.com/nao1215/markdown"
)

// Options holds configuration for rendering a ledger.
type Options struct {
	Title    string // Document title, a default one is used if empty.
	Currency string // Currency code used to format values, plain decimals if empty.
	// Base is the candidate base value used for the remaining value. It may
	// be text being typed. If nil, the locked base of the ledger is used.
	Base any
}

// tableOptions keeps column headers as written.
var tableOptions = md.TableOptions{AutoFormatHeaders: false}

// Messages displayed below the ledger.
const (
	LimitReachedMessage = "100% limit reached."
	NoEntriesMessage    = "_No entries yet._"
)

// LedgerMarkdown renders the ledger entries, totals and remaining value to a
// markdown string.
func LedgerMarkdown(l *percentage.Ledger, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := opts.Title
	if title == "" {
		title = "Inverse Percentage"
	}
	if base, ok := l.Base(); ok {
		title = fmt.Sprintf("%s of %s", title, FormatValue(base, opts.Currency))
	}
	doc.H1(title)

	entries := l.Entries()
	if len(entries) > 0 {
		accumulated := l.Accumulated()
		rows := make([][]string, 0, len(entries))
		for i, e := range entries {
			pct := FormatPercent(e.Percentage)
			if e.Acknowledged {
				pct += " ✓"
			}
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				FormatValue(e.Value, opts.Currency),
				pct,
				FormatAccumulated(accumulated[i]),
				ShortID(e.ID),
			})
		}
		doc.CustomTable(md.TableSet{
			Header: []string{"#", "Value", "% (5 dec)", "Sum %", "ID"},
			Rows:   rows,
		}, tableOptions)
	}

	var w bytes.Buffer
	w.WriteString(doc.String())
	if len(entries) == 0 {
		fmt.Fprintf(&w, "\n%s\n", NoEntriesMessage)
	}
	fmt.Fprintf(&w, "\nTotal: %s\n", FormatAccumulated(l.TotalPercentage()))
	fmt.Fprintf(&w, "\n%s\n", RemainingLine(l, opts))

	ConditionalBlock(&w, func(w io.Writer) bool {
		if !l.IsFull() {
			return false
		}
		fmt.Fprintf(w, "\n**%s**\n", LimitReachedMessage)
		return true
	})
	return w.String()
}

// RemainingLine renders the value left until the base is exhausted.
func RemainingLine(l *percentage.Ledger, opts Options) string {
	candidate := opts.Base
	if candidate == nil {
		if base, ok := l.Base(); ok {
			candidate = base
		}
	}
	remaining, ok := l.Remaining(candidate)
	if !ok {
		return "Remaining: -"
	}
	line := "Remaining: " + FormatValue(remaining, opts.Currency)
	if !remaining.IsPositive() {
		line += " (exhausted)"
	}
	return line
}

// Inverse is one computed percentage, with the running sum so far.
type Inverse struct {
	Partial     percentage.Amount
	Percentage  percentage.Percent
	Accumulated percentage.Percent
}

// InverseMarkdown renders a list of computed percentages of base.
func InverseMarkdown(base percentage.Amount, items []Inverse, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Percentages of %s", FormatValue(base, currency)))

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			FormatValue(it.Partial, currency),
			FormatPercent(it.Percentage),
			FormatAccumulated(it.Accumulated),
		})
	}
	doc.CustomTable(md.TableSet{
		Header: []string{"Value", "% (5 dec)", "Sum %"},
		Rows:   rows,
	}, tableOptions)
	return doc.String()
}
