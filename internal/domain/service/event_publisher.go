package service

import (
	"context"
	"time"
)

// Ledger event names.
const (
	LedgerEventConsumed = "credit.consumed"
	LedgerEventDeleted  = "entry.deleted"
	LedgerEventRestored = "entry.restored"
)

// LedgerEvent represents a credit ledger mutation published for async
// consumers such as billing reconciliation.
type LedgerEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Event         string    `json:"event"`
	TransactionID string    `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	BuildingID    string    `json:"building_id,omitempty"`
	Type          string    `json:"type"`
	Action        string    `json:"action"`
	Purpose       string    `json:"purpose"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLedgerEvent publishes a ledger mutation for async processing
	PublishLedgerEvent(ctx context.Context, event *LedgerEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
