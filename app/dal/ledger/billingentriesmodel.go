package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ BillingEntriesModel = (*customBillingEntriesModel)(nil)

type (
	// BillingEntriesModel is the append-only billing log.
	BillingEntriesModel interface {
		Insert(ctx context.Context, data *BillingEntries) error
		FindByDate(ctx context.Context, rowDate string) ([]*BillingEntries, error)
	}

	customBillingEntriesModel struct {
		conn  sqlx.SqlConn
		table string
	}

	BillingEntries struct {
		Id         int64     `db:"id"`
		EntryId    string    `db:"entry_id"`
		Category   string    `db:"category"`
		Content    string    `db:"content"`
		SenderId   string    `db:"sender_id"`
		SenderName string    `db:"sender_name"`
		LoggedAt   time.Time `db:"logged_at"`
	}
)

// NewBillingEntriesModel returns a model for the billing_entries table.
func NewBillingEntriesModel(conn sqlx.SqlConn) BillingEntriesModel {
	return &customBillingEntriesModel{
		conn:  conn,
		table: "`billing_entries`",
	}
}

func (m *customBillingEntriesModel) Insert(ctx context.Context, data *BillingEntries) error {
	query := fmt.Sprintf("insert into %s (`entry_id`, `category`, `content`, `sender_id`, `sender_name`, `logged_at`) values (?, ?, ?, ?, ?, ?)", m.table)
	_, err := m.conn.ExecCtx(ctx, query, data.EntryId, data.Category, data.Content, data.SenderId, data.SenderName, data.LoggedAt)
	return err
}

func (m *customBillingEntriesModel) FindByDate(ctx context.Context, rowDate string) ([]*BillingEntries, error) {
	// entry ids embed DDMMYY after the 3-letter code
	query := fmt.Sprintf("select `id`, `entry_id`, `category`, `content`, `sender_id`, `sender_name`, `logged_at` from %s where substring(`entry_id`, 4, 6) = ? order by `id` asc", m.table)
	var resp []*BillingEntries
	err := m.conn.QueryRowsCtx(ctx, &resp, query, rowDate)
	switch err {
	case nil, sqlx.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}
