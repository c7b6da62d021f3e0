package percentage

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

// State is the stage of a ledger in a session.
type State int

const (
	// Empty ledgers have no base value and no entries.
	Empty State = iota
	// Active ledgers accept new entries.
	Active
	// Full ledgers have reached 100%, only removal and reset make sense.
	Full
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Active:
		return "active"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Entry is one recorded partial value with its percentage of the base.
type Entry struct {
	ID           string  `json:"id"`
	Value        Amount  `json:"value"`
	Percentage   Percent `json:"percentage"`
	Acknowledged bool    `json:"acknowledged,omitempty"`
}

// Ledger accumulates entries measured against a single base value.
//
// The base value is locked by the first successful addition and stays so
// until Reset. Entries are kept in insertion order.
type Ledger struct {
	base    Amount
	locked  bool
	entries []Entry

	totalPercentage Percent
	totalValue      Amount

	newID func() string // entry identifier factory
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		entries: make([]Entry, 0),
		newID:   uuid.NewString,
	}
}

// Base returns the locked base value, and false if none is locked yet.
func (l *Ledger) Base() (Amount, bool) { return l.base, l.locked }

// Locked reports whether the base value is locked.
func (l *Ledger) Locked() bool { return l.locked }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// TotalPercentage returns the sum of all entries percentage.
func (l *Ledger) TotalPercentage() Percent { return l.totalPercentage }

// TotalValue returns the sum of all entries value.
func (l *Ledger) TotalValue() Amount { return l.totalValue }

// Entries returns a copy of the entries in insertion order.
func (l *Ledger) Entries() []Entry { return slices.Clone(l.entries) }

// Entry returns the entry with this id.
func (l *Ledger) Entry(id string) (Entry, bool) {
	i := l.index(id)
	if i < 0 {
		return Entry{}, false
	}
	return l.entries[i], true
}

func (l *Ledger) index(id string) int {
	return slices.IndexFunc(l.entries, func(e Entry) bool { return e.ID == id })
}

// AddEntry computes the percentage of partial and appends it as a new entry.
//
// The first successful call locks base. Later calls ignore the base argument
// and use the locked one. Nothing is recorded if the base is zero.
//
// AddEntry never refuses an entry because the ledger is full: the addition
// that crosses 100% is accepted, callers use IsFull to stop the next ones.
func (l *Ledger) AddEntry(base, partial Amount) (Entry, error) {
	if l.locked {
		base = l.base
	}
	pct, err := InversePercentage(base, partial)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		ID:         l.nextID(),
		Value:      partial,
		Percentage: pct,
	}
	l.entries = append(l.entries, e)
	l.totalPercentage = l.totalPercentage.Add(pct)
	l.totalValue = l.totalValue.Add(partial)
	if !l.locked {
		l.base, l.locked = base, true
	}
	return e, nil
}

// Add is AddEntry for loosely typed arguments, see Number.
//
// Once the base is locked the base argument is not even read, so an invalid
// one does not fail the addition.
func (l *Ledger) Add(base, partial any) (Entry, error) {
	b := l.base
	if !l.locked {
		var err error
		if b, err = Number(base); err != nil {
			return Entry{}, fmt.Errorf("base value: %w", err)
		}
	}
	p, err := Number(partial)
	if err != nil {
		return Entry{}, fmt.Errorf("partial value: %w", err)
	}
	return l.AddEntry(b, p)
}

// nextID returns an identifier not used by any entry.
func (l *Ledger) nextID() string {
	if l.newID == nil {
		l.newID = uuid.NewString
	}
	for {
		id := l.newID()
		if l.index(id) < 0 {
			return id
		}
	}
}

// RemoveEntry removes the entry with this id. Unknown ids are ignored.
func (l *Ledger) RemoveEntry(id string) {
	i := l.index(id)
	if i < 0 {
		return
	}
	l.entries = slices.Delete(l.entries, i, i+1)
	l.recompute()
}

// recompute restores totals from the entries themselves.
func (l *Ledger) recompute() {
	l.totalPercentage = sumPercentages(l.entries)
	l.totalValue = sumValues(l.entries)
}

// AcknowledgeEntry flags the entry as acknowledged (copied or viewed by the
// user) and returns its value. It returns false if there is no such entry.
func (l *Ledger) AcknowledgeEntry(id string) (Amount, bool) {
	i := l.index(id)
	if i < 0 {
		return Amount{}, false
	}
	l.entries[i].Acknowledged = true
	return l.entries[i].Value, true
}

// Reset clears all entries and unlocks the base value.
func (l *Ledger) Reset() {
	l.entries = l.entries[:0]
	l.base, l.locked = Amount{}, false
	l.recompute()
}

// IsFull reports whether the entries sum up to 100% or more.
func (l *Ledger) IsFull() bool {
	return l.totalPercentage.GreaterThanOrEqual(full)
}

// State returns the current stage of the ledger.
func (l *Ledger) State() State {
	switch {
	case l.IsFull():
		return Full
	case !l.locked && len(l.entries) == 0:
		return Empty
	default:
		return Active
	}
}

// Remaining returns candidate minus the total value of entries.
//
// candidate may differ from the locked base, typically while the base is
// still being typed. Remaining returns false when candidate is missing or is
// not a number.
func (l *Ledger) Remaining(candidate any) (Amount, bool) {
	base, err := Number(candidate)
	if err != nil {
		return Amount{}, false
	}
	return base.Sub(l.totalValue), true
}

// Accumulated returns the running sum of percentages in entries order.
func (l *Ledger) Accumulated() []Percent {
	res := make([]Percent, len(l.entries))
	var acc Percent
	for i, e := range l.entries {
		acc = acc.Add(e.Percentage)
		res[i] = acc
	}
	return res
}

// ledgerJSON is the JSON form of a Ledger.
type ledgerJSON struct {
	Base            *Amount `json:"base,omitempty"`
	State           string  `json:"state"`
	Entries         []Entry `json:"entries"`
	TotalPercentage Percent `json:"totalPercentage"`
	TotalValue      Amount  `json:"totalValue"`
}

// MarshalJSON implements the json.Marshaler interface.
// The base is omitted while it is not locked.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	v := ledgerJSON{
		State:           l.State().String(),
		Entries:         l.Entries(),
		TotalPercentage: l.totalPercentage,
		TotalValue:      l.totalValue,
	}
	if l.locked {
		base := l.base
		v.Base = &base
	}
	return json.Marshal(v)
}
