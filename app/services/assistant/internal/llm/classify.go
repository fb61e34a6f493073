package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Kind is the employee-intent split as a closed variant. Anything the
// model returns that does not parse cleanly is KindParseFailure, never
// a raw string trusted downstream.
type Kind int

const (
	KindParseFailure Kind = iota
	KindGreeting
	KindBilling
)

type Decision struct {
	Kind   Kind
	Reason string
	Raw    string
}

type employeeClassifier struct {
	runnable compose.Runnable[string, *Decision]
}

func newEmployeeClassifier(ctx context.Context, chatModel model.BaseChatModel) (*employeeClassifier, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	chain := compose.NewChain[string, *Decision]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, text string) ([]*schema.Message, error) {
		systemPrompt := `You triage internal staff messages for a retail brand. Read the message and output JSON only, no explanation, no extra text:
{
  "intent": "greeting|billing",
  "reason": "one short sentence"
}
"greeting" means small talk or a salutation with nothing to log. "billing" means an operational note that must be filed: sales, stock, delays, repairs, deliveries, campaigns. Return valid JSON with no surrounding characters.`

		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage("Staff message: " + text),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Decision, error) {
		if msg == nil {
			return nil, fmt.Errorf("empty message")
		}
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return nil, fmt.Errorf("empty response")
		}

		clean := trimJSONBlock(content)

		var payload struct {
			Intent string `json:"intent"`
			Reason string `json:"reason"`
		}
		if err := json.Unmarshal([]byte(clean), &payload); err != nil {
			return nil, err
		}

		decision := &Decision{Reason: payload.Reason, Raw: clean}
		switch strings.ToLower(strings.TrimSpace(payload.Intent)) {
		case "greeting":
			decision.Kind = KindGreeting
		case "billing":
			decision.Kind = KindBilling
		default:
			decision.Kind = KindParseFailure
		}
		return decision, nil
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}
	return &employeeClassifier{runnable: runnable}, nil
}

// ClassifyEmployee splits a staff message into greeting vs billing. Any
// model or parse failure degrades to KindParseFailure so the caller can
// fall back to the fixed greeting path.
func (m *Model) ClassifyEmployee(ctx context.Context, text string) Decision {
	if m == nil || m.classify == nil || m.classify.runnable == nil {
		return Decision{Kind: KindParseFailure, Reason: "classifier unavailable"}
	}

	decision, err := m.classify.runnable.Invoke(ctx, text)
	if err != nil || decision == nil {
		logx.WithContext(ctx).Errorf("employee classify failed: %v", err)
		return Decision{Kind: KindParseFailure, Reason: "classifier error"}
	}
	return *decision
}

func trimJSONBlock(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start > end {
		return content
	}
	return content[start : end+1]
}
