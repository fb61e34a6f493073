package logic

import (
	"context"
	"regexp"
	"time"

	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/services/assistant/internal/bot/ledger"
	"AtelierAI/app/services/assistant/internal/svc"
	"AtelierAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

var dateTokenPattern = regexp.MustCompile(`^\d{6}$`)

type BillingEntriesLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBillingEntriesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BillingEntriesLogic {
	return &BillingEntriesLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// BillingEntries lists the ledger entries filed under one DDMMYY date,
// defaulting to today.
func (l *BillingEntriesLogic) BillingEntries(req *types.BillingEntriesRequest) (*types.BillingEntriesResponse, error) {
	date := req.Date
	if date == "" {
		date = ledger.DateToken(time.Now())
	}
	if !dateTokenPattern.MatchString(date) {
		return &types.BillingEntriesResponse{
			Code: errno.InvalidParam,
			Msg:  "date must be DDMMYY",
			Date: date,
		}, nil
	}

	entries, err := l.svcCtx.Entries.ForDate(l.ctx, date)
	if err != nil {
		l.Errorf("billing entries lookup for %s failed: %v", date, err)
		return &types.BillingEntriesResponse{
			Code: errno.LedgerUnavailable,
			Msg:  "ledger unavailable",
			Date: date,
		}, nil
	}

	views := make([]types.BillingEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, types.BillingEntryView{
			EntryId:    e.ID,
			Category:   e.Category,
			Content:    e.Text,
			SenderId:   e.SenderID,
			SenderName: e.SenderName,
			LoggedAt:   e.LoggedAt.Format(time.RFC3339),
		})
	}
	return &types.BillingEntriesResponse{
		Code:    errno.StatusOK,
		Msg:     "ok",
		Date:    date,
		Entries: views,
	}, nil
}
