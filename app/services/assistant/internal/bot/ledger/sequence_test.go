package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"AtelierAI/app/services/assistant/internal/bot/intent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDateToken(t *testing.T) {
	assert.Equal(t, "290826", DateToken(time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "010203", DateToken(time.Date(2003, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestSequencerSequential(t *testing.T) {
	store := NewMemoryStore()
	s := NewSequencer(store, intent.Billing)
	s.now = fixedClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))

	ctx := context.Background()
	assert.Equal(t, "OPS290826000001", s.Next(ctx, "Operations"))
	assert.Equal(t, "OPS290826000002", s.Next(ctx, "Operations"))
	assert.Equal(t, "SAL290826000001", s.Next(ctx, "Sales"))
	assert.Equal(t, "OPS290826000003", s.Next(ctx, "Operations"))
}

func TestSequencerDateRollover(t *testing.T) {
	store := NewMemoryStore()
	s := NewSequencer(store, intent.Billing)
	s.now = fixedClock(time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC))

	ctx := context.Background()
	s.Next(ctx, "Operations")
	s.Next(ctx, "Operations")

	s.now = fixedClock(time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC))
	assert.Equal(t, "OPS300826000001", s.Next(ctx, "Operations"))

	// the previous day's row survives below the fresh one
	rows, err := store.Rows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "300826", rows[0].Date)
	assert.Equal(t, 1, rows[0].Counts["OPS"])
	assert.Equal(t, "290826", rows[1].Date)
	assert.Equal(t, 2, rows[1].Counts["OPS"])
}

func TestSequencerUnknownCategory(t *testing.T) {
	s := NewSequencer(NewMemoryStore(), intent.Billing)
	s.now = fixedClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "UNK290826000001", s.Next(context.Background(), "NoSuchCategory"))
}

type failingCounterStore struct{}

func (failingCounterStore) Rows(context.Context) ([]CounterRow, error) {
	return nil, errors.New("sheet unavailable")
}

func (failingCounterStore) Update(context.Context, []CounterRow) error {
	return errors.New("sheet unavailable")
}

func TestSequencerStoreFailureStillIssuesId(t *testing.T) {
	s := NewSequencer(failingCounterStore{}, intent.Billing)
	s.now = fixedClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))

	assert.Equal(t, "OPS290826000001", s.Next(context.Background(), "Operations"))
	// without a persisted row every call restarts at one
	assert.Equal(t, "OPS290826000001", s.Next(context.Background(), "Operations"))
}

func TestRecorder(t *testing.T) {
	store := NewMemoryStore()
	s := NewSequencer(store, intent.Billing)
	s.now = fixedClock(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC))
	r := NewRecorder(s, store)

	entry := r.Record(context.Background(), "Logistics", "courier delayed again", "9230001", "Hamza")
	assert.Equal(t, "LOG290826000001", entry.ID)
	assert.Equal(t, "Logistics", entry.Category)
	assert.Equal(t, "9230001", entry.SenderID)
	assert.False(t, entry.LoggedAt.IsZero())

	logged := store.Entries()
	require.Len(t, logged, 1)
	assert.Equal(t, entry.ID, logged[0].ID)

	byDate, err := store.ForDate(context.Background(), "290826")
	require.NoError(t, err)
	require.Len(t, byDate, 1)
	assert.Equal(t, entry.ID, byDate[0].ID)

	byDate, err = store.ForDate(context.Background(), "300826")
	require.NoError(t, err)
	assert.Empty(t, byDate)
}
