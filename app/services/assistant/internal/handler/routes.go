// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"AtelierAI/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/assistant/v1/webhook",
				Handler: WebhookHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/assistant/v1/ping",
				Handler: PingHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/assistant/v1/catalog/refresh",
				Handler: RefreshCatalogHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/assistant/v1/billing/entries",
				Handler: BillingEntriesHandler(serverCtx),
			},
		},
	)
}
