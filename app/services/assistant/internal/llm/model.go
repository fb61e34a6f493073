package llm

import (
	"context"
	"fmt"
	"strings"

	"AtelierAI/app/common/consts/biz"
	"AtelierAI/app/services/assistant/internal/session"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Model wraps the ark chat model behind the two calls the assistant
// needs: free-text completion and the employee intent split. A failed
// init leaves the model unavailable; callers fall back to fixed replies.
type Model struct {
	chat     *ark.ChatModel
	classify *employeeClassifier
}

func New(ctx context.Context, baseURL, apiKey, modelName string) *Model {
	m := &Model{}

	cm, err := ark.NewChatModel(ctx, &ark.ChatModelConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   modelName,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
		return m
	}
	m.chat = cm
	logx.Infow("ark chat model initialized", logx.Field("model", modelName))

	classifier, err := newEmployeeClassifier(ctx, cm)
	if err != nil {
		logx.Errorw("init employee classifier failed", logx.Field("err", err))
	} else {
		m.classify = classifier
	}
	return m
}

func (m *Model) Available() bool {
	return m != nil && m.chat != nil
}

// Complete generates a free-text reply from the system prompt, the
// rolling history and the new user message.
func (m *Model) Complete(ctx context.Context, systemPrompt string, history []session.Turn, user string) (string, error) {
	if !m.Available() {
		return "", fmt.Errorf("chat model unavailable")
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(systemPrompt))
	for _, turn := range history {
		if turn.Role == biz.RoleAssistant {
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		} else {
			messages = append(messages, schema.UserMessage(turn.Content))
		}
	}
	messages = append(messages, schema.UserMessage(user))

	out, err := m.chat.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("model returned empty message")
	}
	return strings.TrimSpace(out.Content), nil
}
