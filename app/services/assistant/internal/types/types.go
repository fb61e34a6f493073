// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type MediaPayload struct {
	Kind    string `json:"kind"`
	Url     string `json:"url"`
	Caption string `json:"caption,optional"`
}

type WebhookRequest struct {
	Text       string        `json:"text,optional"`
	SenderId   string        `json:"sender_id"`
	SenderName string        `json:"sender_name,optional"`
	Media      *MediaPayload `json:"media,optional"`
}

type WebhookResponse struct {
	Code  int    `json:"code"`
	Msg   string `json:"msg"`
	Reply string `json:"reply"`
}

type PingResponse struct {
	Code   int    `json:"code"`
	Msg    string `json:"msg"`
	Loaded bool   `json:"catalog_loaded"`
	Model  bool   `json:"model_ready"`
}

type BillingEntriesRequest struct {
	Date string `form:"date,optional"`
}

type BillingEntryView struct {
	EntryId    string `json:"entry_id"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	SenderId   string `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	LoggedAt   string `json:"logged_at"`
}

type BillingEntriesResponse struct {
	Code    int                `json:"code"`
	Msg     string             `json:"msg"`
	Date    string             `json:"date"`
	Entries []BillingEntryView `json:"entries"`
}

type RefreshCatalogResponse struct {
	Code       int    `json:"code"`
	Msg        string `json:"msg"`
	Categories int    `json:"categories"`
	Galleries  int    `json:"galleries"`
}
