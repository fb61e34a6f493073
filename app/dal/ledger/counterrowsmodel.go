package ledger

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var _ CounterRowsModel = (*customCounterRowsModel)(nil)

type (
	// CounterRowsModel persists the daily counter row-set. The set is
	// small (one row per day) and always rewritten whole, so ReplaceAll
	// deletes and reinserts inside one transaction.
	CounterRowsModel interface {
		FindAll(ctx context.Context, sheetKey string) ([]*CounterRows, error)
		ReplaceAll(ctx context.Context, sheetKey string, rows []*CounterRows) error
	}

	customCounterRowsModel struct {
		conn  sqlx.SqlConn
		table string
	}

	CounterRows struct {
		Id         int64  `db:"id"`
		SheetKey   string `db:"sheet_key"`
		RowDate    string `db:"row_date"`
		CountsJson string `db:"counts_json"`
		Position   int64  `db:"position"`
	}
)

// NewCounterRowsModel returns a model for the counter_rows table.
func NewCounterRowsModel(conn sqlx.SqlConn) CounterRowsModel {
	return &customCounterRowsModel{
		conn:  conn,
		table: "`counter_rows`",
	}
}

func (m *customCounterRowsModel) FindAll(ctx context.Context, sheetKey string) ([]*CounterRows, error) {
	query := fmt.Sprintf("select `id`, `sheet_key`, `row_date`, `counts_json`, `position` from %s where `sheet_key` = ? order by `position` asc", m.table)
	var resp []*CounterRows
	err := m.conn.QueryRowsCtx(ctx, &resp, query, sheetKey)
	switch err {
	case nil, sqlx.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func (m *customCounterRowsModel) ReplaceAll(ctx context.Context, sheetKey string, rows []*CounterRows) error {
	return m.conn.TransactCtx(ctx, func(ctx context.Context, session sqlx.Session) error {
		del := fmt.Sprintf("delete from %s where `sheet_key` = ?", m.table)
		if _, err := session.ExecCtx(ctx, del, sheetKey); err != nil {
			return err
		}
		ins := fmt.Sprintf("insert into %s (`sheet_key`, `row_date`, `counts_json`, `position`) values (?, ?, ?, ?)", m.table)
		for i, row := range rows {
			if _, err := session.ExecCtx(ctx, ins, sheetKey, row.RowDate, row.CountsJson, int64(i)); err != nil {
				return err
			}
		}
		return nil
	})
}
