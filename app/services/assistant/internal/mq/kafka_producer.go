package mq

import (
	"context"
	"encoding/json"

	"AtelierAI/app/services/assistant/internal/svc"

	"github.com/segmentio/kafka-go"
)

// PublishConversationEvent sends one processed-message event to Kafka.
// A missing writer (no broker configured) is a silent no-op.
func PublishConversationEvent(sc *svc.ServiceContext, evt ConversationEvent) error {
	return publish(sc.ConversationWriter, evt.SessionId, evt)
}

// PublishBillingEvent mirrors one ledger entry to Kafka.
func PublishBillingEvent(sc *svc.ServiceContext, evt BillingEvent) error {
	return publish(sc.BillingWriter, evt.SenderId, evt)
}

func publish(w *kafka.Writer, key string, payload any) error {
	if w == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return w.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: body,
	})
}
