package logic

import (
	"context"
	"strings"
	"time"

	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/snowflake"
	"AtelierAI/app/services/assistant/internal/bot"
	"AtelierAI/app/services/assistant/internal/mq"
	"AtelierAI/app/services/assistant/internal/svc"
	"AtelierAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type WebhookLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWebhookLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WebhookLogic {
	return &WebhookLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Webhook handles one inbound message end to end: orchestrate, deliver
// the reply, publish events. Delivery and publish failures are logged
// and never fail the webhook ack.
func (l *WebhookLogic) Webhook(req *types.WebhookRequest) (*types.WebhookResponse, error) {
	if req == nil || strings.TrimSpace(req.SenderId) == "" {
		return &types.WebhookResponse{
			Code: errno.InvalidPayload,
			Msg:  "sender_id is required",
		}, nil
	}

	in := bot.Inbound{
		Text:       req.Text,
		SenderID:   req.SenderId,
		SenderName: req.SenderName,
	}
	if req.Media != nil {
		in.Media = &bot.Media{
			Kind:    req.Media.Kind,
			URL:     req.Media.Url,
			Caption: req.Media.Caption,
		}
	}

	out := l.svcCtx.Orchestrator.Handle(l.ctx, in)

	if err := l.svcCtx.Sender.Send(l.ctx, req.SenderId, req.SenderName, out.Reply); err != nil {
		l.Errorf("reply delivery to %s failed: %v", req.SenderId, err)
	}

	if err := mq.PublishConversationEvent(l.svcCtx, mq.ConversationEvent{
		EventId:   snowflake.Next(),
		SessionId: req.SenderId,
		Intent:    out.Intent,
		Inbound:   req.Text,
		Reply:     out.Reply,
		At:        time.Now(),
	}); err != nil {
		l.Errorf("conversation event publish failed: %v", err)
	}

	if out.BillingEntry != nil {
		if err := mq.PublishBillingEvent(l.svcCtx, mq.BillingEvent{
			EventId:  snowflake.Next(),
			EntryId:  out.BillingEntry.ID,
			Category: out.BillingEntry.Category,
			SenderId: out.BillingEntry.SenderID,
			At:       out.BillingEntry.LoggedAt,
		}); err != nil {
			l.Errorf("billing event publish failed: %v", err)
		}
	}

	return &types.WebhookResponse{
		Code:  errno.StatusOK,
		Msg:   "ok",
		Reply: out.Reply,
	}, nil
}
