package biz

import "time"

const (
	// CounterSheetKey names the ledger counter row-set, one row per date.
	CounterSheetKey = "daily_counters"

	// RoleUser / RoleAssistant label session history turns.
	RoleUser      = "user"
	RoleAssistant = "assistant"

	DefaultSessionTTL  = time.Hour * 24
	DefaultHistoryKeep = 10
)
