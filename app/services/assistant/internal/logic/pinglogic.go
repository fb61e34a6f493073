package logic

import (
	"context"

	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/services/assistant/internal/svc"
	"AtelierAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type PingLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewPingLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PingLogic {
	return &PingLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *PingLogic) Ping() (*types.PingResponse, error) {
	return &types.PingResponse{
		Code:   errno.StatusOK,
		Msg:    "ok",
		Loaded: l.svcCtx.Resolver.Loaded(),
		Model:  l.svcCtx.Model.Available(),
	}, nil
}
