package mq

import (
	"context"
	"time"

	"AtelierAI/app/common/consts/biz"
	"AtelierAI/app/services/assistant/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

func NewAsynqMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskSweepSessions, newSweepSessionsHandler(sc))
	return mux
}

func newSweepSessionsHandler(sc *svc.ServiceContext) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		ttl := time.Duration(sc.Config.Bot.SessionTTLHours) * time.Hour
		if ttl <= 0 {
			ttl = biz.DefaultSessionTTL
		}
		evicted, err := sc.Sessions.Sweep(ctx, ttl)
		if err != nil {
			logx.WithContext(ctx).Errorf("session sweep failed: %v", err)
			return err
		}
		if evicted > 0 {
			logx.WithContext(ctx).Infof("session sweep evicted %d idle sessions", evicted)
		}
		return nil
	}
}
