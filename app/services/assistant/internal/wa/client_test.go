package wa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendUnconfiguredDrops(t *testing.T) {
	c := NewClient("https://graph.example.test", "123", "", 0)
	assert.NoError(t, c.Send(context.Background(), "923001", "Ali", "hello"))
}

func TestSend(t *testing.T) {
	var got struct {
		MessagingProduct string `json:"messaging_product"`
		To               string `json:"to"`
		Type             string `json:"type"`
		Text             struct {
			Body string `json:"body"`
		} `json:"text"`
	}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, "/123/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123", "secret", 0)
	require.NoError(t, c.Send(context.Background(), "923001", "Ali", "your order is ready"))

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "whatsapp", got.MessagingProduct)
	assert.Equal(t, "923001", got.To)
	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "your order is ready", got.Text.Body)
}

func TestSendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad token"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "123", "secret", 0)
	err := c.Send(context.Background(), "923001", "Ali", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
