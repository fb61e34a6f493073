package wa

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpc"
)

const defaultTimeout = time.Second * 10

// Client delivers replies through the messaging provider's cloud API.
// An unconfigured client (empty token) drops messages with a log line,
// which keeps local runs and tests out of the provider's way.
type Client struct {
	baseURL string
	phoneID string
	token   string
	timeout time.Duration
}

func NewClient(baseURL, phoneID, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		phoneID: phoneID,
		token:   token,
		timeout: timeout,
	}
}

type textPayload struct {
	Authorization    string `header:"Authorization"`
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Send pushes one text reply to the given phone number. The display
// name is logged for traceability only; the provider addresses by
// number.
func (c *Client) Send(ctx context.Context, to, displayName, text string) error {
	if c.token == "" {
		logx.WithContext(ctx).Infof("wa client unconfigured, dropping reply to %s (%s)", to, displayName)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload := textPayload{
		Authorization:    "Bearer " + c.token,
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
	}
	payload.Text.Body = text

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneID)
	resp, err := httpc.Do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return fmt.Errorf("wa send to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("wa send to %s: status %d: %s", to, resp.StatusCode, body)
	}
	return nil
}
