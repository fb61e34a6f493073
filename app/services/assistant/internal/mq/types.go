package mq

import "time"

// ConversationEvent is published for every processed inbound message.
type ConversationEvent struct {
	EventId   int64     `json:"event_id"`
	SessionId string    `json:"session_id"`
	Intent    string    `json:"intent,omitempty"`
	Inbound   string    `json:"inbound"`
	Reply     string    `json:"reply"`
	At        time.Time `json:"at"`
}

// BillingEvent mirrors a filed ledger entry for downstream consumers.
type BillingEvent struct {
	EventId  int64     `json:"event_id"`
	EntryId  string    `json:"entry_id"`
	Category string    `json:"category"`
	SenderId string    `json:"sender_id"`
	At       time.Time `json:"at"`
}

// TaskSweepSessions is the asynq task that evicts idle sessions.
const TaskSweepSessions = "assistant:sessions:sweep"
