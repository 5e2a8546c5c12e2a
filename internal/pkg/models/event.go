package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEventType names a payment lifecycle event
type TransactionEventType string

const (
	EventPaymentInitiated     TransactionEventType = "payment.initiated"
	EventPaymentStatusChanged TransactionEventType = "payment.status_changed"
	EventPaymentReconciled    TransactionEventType = "payment.reconciled"
)

// TransactionEvent is published to NSQ whenever a transaction is created or changes
type TransactionEvent struct {
	Type          TransactionEventType `json:"type"`
	ID            int64                `json:"id"`
	TransactionID string               `json:"transaction_id"`
	Status        TransactionStatus    `json:"status"`
	Phone         string               `json:"phone"`
	Amount        decimal.Decimal      `json:"amount"`
	Reference     string               `json:"reference"`
	Description   string               `json:"result_description,omitempty"`
	TraceID       string               `json:"trace_id,omitempty"`
	OccurredAt    time.Time            `json:"occurred_at"`
}

// NewTransactionEvent snapshots tx into an event
func NewTransactionEvent(eventType TransactionEventType, tx *Transaction, traceID string) TransactionEvent {
	return TransactionEvent{
		Type:          eventType,
		ID:            tx.ID,
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		Phone:         tx.Phone,
		Amount:        tx.Amount,
		Reference:     tx.Reference,
		Description:   tx.ResultDescription,
		TraceID:       traceID,
		OccurredAt:    time.Now().UTC(),
	}
}
