package ledger

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Recorder files one billing message: issue the daily id, append the
// ledger row. A failed append is logged and swallowed so the reply to
// the employee still goes out; a lost row is the accepted trade-off.
type Recorder struct {
	seq     *Sequencer
	entries EntryStore
}

func NewRecorder(seq *Sequencer, entries EntryStore) *Recorder {
	return &Recorder{
		seq:     seq,
		entries: entries,
	}
}

func (r *Recorder) Record(ctx context.Context, categoryKey, text, senderID, senderName string) Entry {
	entry := Entry{
		ID:         r.seq.Next(ctx, categoryKey),
		Category:   categoryKey,
		Text:       text,
		SenderID:   senderID,
		SenderName: senderName,
		LoggedAt:   time.Now(),
	}

	if err := r.entries.Append(ctx, entry); err != nil {
		logx.WithContext(ctx).Errorf("billing append failed, entry %s dropped: %v", entry.ID, err)
	}
	return entry
}
