package ledger

import (
	"context"
	"time"
)

// CounterRow tracks per-category sequence counts for one date. Exactly
// one row matches today at any time; stale rows are kept below it as
// append-only history.
type CounterRow struct {
	Date   string
	Counts map[string]int
}

// Entry is one logged billing message.
type Entry struct {
	ID         string
	Category   string
	Text       string
	SenderID   string
	SenderName string
	LoggedAt   time.Time
}

// CounterStore is the external row-set the sequencer reads and rewrites.
// Rows returns the full ordered set, newest date first; Update persists
// the full set back.
type CounterStore interface {
	Rows(ctx context.Context) ([]CounterRow, error)
	Update(ctx context.Context, rows []CounterRow) error
}

// EntryStore appends billing entries to the ledger log. ForDate lists
// the entries filed under one DDMMYY date token, oldest first.
type EntryStore interface {
	Append(ctx context.Context, e Entry) error
	ForDate(ctx context.Context, dateToken string) ([]Entry, error)
}
