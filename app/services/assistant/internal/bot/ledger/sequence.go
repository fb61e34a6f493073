package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"AtelierAI/app/services/assistant/internal/bot/intent"

	"github.com/zeromicro/go-zero/core/logx"
)

// Sequencer issues category-prefixed, date-stamped sequential ids of the
// form CODE + DDMMYY + 6-digit count, e.g. OPS290826000001.
//
// Next never fails: a store read error starts from a fresh row, a store
// write error is logged and the id still returned. The read-modify-write
// is serialized by a process-local mutex; deployments with more than one
// writer need a store-side transaction instead.
type Sequencer struct {
	store    CounterStore
	taxonomy intent.Taxonomy
	now      func() time.Time
	mu       sync.Mutex
}

func NewSequencer(store CounterStore, taxonomy intent.Taxonomy) *Sequencer {
	return &Sequencer{
		store:    store,
		taxonomy: taxonomy,
		now:      time.Now,
	}
}

// DateToken renders the local date as DDMMYY.
func DateToken(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Day(), int(t.Month()), t.Year()%100)
}

func (s *Sequencer) Next(ctx context.Context, categoryKey string) string {
	code := s.taxonomy.CodeFor(categoryKey)
	token := DateToken(s.now())

	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.store.Rows(ctx)
	if err != nil {
		logx.WithContext(ctx).Errorf("counter read failed, starting fresh row: %v", err)
		rows = nil
	}

	if len(rows) == 0 || rows[0].Date != token {
		// date rolled over: prepend a zeroed row, keep history below it
		rows = append([]CounterRow{{Date: token, Counts: map[string]int{}}}, rows...)
	}
	if rows[0].Counts == nil {
		rows[0].Counts = map[string]int{}
	}
	rows[0].Counts[code]++
	seq := rows[0].Counts[code]

	if err := s.store.Update(ctx, rows); err != nil {
		logx.WithContext(ctx).Errorf("counter persist failed, id %s%s%06d may repeat: %v", code, token, seq, err)
	}

	return fmt.Sprintf("%s%s%06d", code, token, seq)
}
