package logic

import (
	"context"

	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/services/assistant/internal/bot/catalog"
	"AtelierAI/app/services/assistant/internal/svc"
	"AtelierAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RefreshCatalogLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRefreshCatalogLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshCatalogLogic {
	return &RefreshCatalogLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// RefreshCatalog reloads both reference tables and swaps them into the
// resolver. A failed load keeps the tables already being served.
func (l *RefreshCatalogLogic) RefreshCatalog() (*types.RefreshCatalogResponse, error) {
	c := l.svcCtx.Config.Catalog
	tables, err := catalog.Load(c.CategoriesCsv, c.GalleriesCsv)
	if err != nil {
		l.Errorf("catalog reload failed: %v", err)
		return &types.RefreshCatalogResponse{
			Code: errno.CatalogReloadFailed,
			Msg:  err.Error(),
		}, nil
	}

	l.svcCtx.Resolver.Refresh(tables)
	l.Infof("catalog reloaded: %d categories, %d galleries", len(tables.Categories), len(tables.Galleries))
	return &types.RefreshCatalogResponse{
		Code:       errno.StatusOK,
		Msg:        "ok",
		Categories: len(tables.Categories),
		Galleries:  len(tables.Galleries),
	}, nil
}
