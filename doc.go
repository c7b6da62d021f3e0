// Package percentage computes what percentage partial values represent of a
// base value, and keeps track of them until the base is exhausted.
//
// The package is made of two parts:
//   - The percentage engine: InversePercentage, a pure function computing
//     (partial / total) * 100 with exact decimal arithmetic.
//   - The entry ledger: a Ledger records each computed percentage as an
//     Entry, maintains the running totals, and tells when 100% is reached.
//
// A Ledger is a plain in-memory value owned by a single session. It is not
// safe for concurrent use, and it is not persisted: the `pcalc` command-line
// tool creates one per run.
package percentage
