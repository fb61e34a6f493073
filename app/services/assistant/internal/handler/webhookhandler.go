// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/response"
	"AtelierAI/app/services/assistant/internal/logic"
	"AtelierAI/app/services/assistant/internal/svc"
	"AtelierAI/app/services/assistant/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func WebhookHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.WebhookRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.OkJsonCtx(r.Context(), w, response.NewResponse(errno.InvalidPayload, err.Error()))
			return
		}

		l := logic.NewWebhookLogic(r.Context(), svcCtx)
		resp, err := l.Webhook(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
