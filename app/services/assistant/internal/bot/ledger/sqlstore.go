package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	dal "AtelierAI/app/dal/ledger"
)

// SqlStore adapts the dal models to the counter and entry store
// contracts. Counts are stored as a JSON object per row.
type SqlStore struct {
	counters dal.CounterRowsModel
	entries  dal.BillingEntriesModel
	sheetKey string
}

func NewSqlStore(counters dal.CounterRowsModel, entries dal.BillingEntriesModel, sheetKey string) *SqlStore {
	return &SqlStore{
		counters: counters,
		entries:  entries,
		sheetKey: sheetKey,
	}
}

func (s *SqlStore) Rows(ctx context.Context) ([]CounterRow, error) {
	records, err := s.counters.FindAll(ctx, s.sheetKey)
	if err != nil {
		return nil, err
	}

	rows := make([]CounterRow, 0, len(records))
	for _, rec := range records {
		counts := map[string]int{}
		if rec.CountsJson != "" {
			if err := json.Unmarshal([]byte(rec.CountsJson), &counts); err != nil {
				return nil, fmt.Errorf("decode counts for %s: %w", rec.RowDate, err)
			}
		}
		rows = append(rows, CounterRow{Date: rec.RowDate, Counts: counts})
	}
	return rows, nil
}

func (s *SqlStore) Update(ctx context.Context, rows []CounterRow) error {
	records := make([]*dal.CounterRows, 0, len(rows))
	for _, row := range rows {
		encoded, err := json.Marshal(row.Counts)
		if err != nil {
			return fmt.Errorf("encode counts for %s: %w", row.Date, err)
		}
		records = append(records, &dal.CounterRows{
			SheetKey:   s.sheetKey,
			RowDate:    row.Date,
			CountsJson: string(encoded),
		})
	}
	return s.counters.ReplaceAll(ctx, s.sheetKey, records)
}

func (s *SqlStore) ForDate(ctx context.Context, dateToken string) ([]Entry, error) {
	records, err := s.entries.FindByDate(ctx, dateToken)
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(records))
	for _, rec := range records {
		out = append(out, Entry{
			ID:         rec.EntryId,
			Category:   rec.Category,
			Text:       rec.Content,
			SenderID:   rec.SenderId,
			SenderName: rec.SenderName,
			LoggedAt:   rec.LoggedAt,
		})
	}
	return out, nil
}

func (s *SqlStore) Append(ctx context.Context, e Entry) error {
	return s.entries.Insert(ctx, &dal.BillingEntries{
		EntryId:    e.ID,
		Category:   e.Category,
		Content:    e.Text,
		SenderId:   e.SenderID,
		SenderName: e.SenderName,
		LoggedAt:   e.LoggedAt,
	})
}
