package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of an STK push
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusTimeout   TransactionStatus = "timeout"
)

// PlaceholderPrefix marks a transaction_id the provider has not replaced yet
const PlaceholderPrefix = "PENDING-"

// DefaultReference is stored when the client omits a reference
const DefaultReference = "Payment"

// IsTerminal reports whether no further transition is allowed out of s
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed || s == TransactionStatusTimeout
}

// CanTransition encodes the state machine: pending may move to any terminal state, nothing else moves.
func CanTransition(from, to TransactionStatus) bool {
	return from == TransactionStatusPending && to.IsTerminal()
}

// Transaction is the durable record of one STK push attempt
type Transaction struct {
	ID                int64             `json:"id" db:"id"`
	TransactionID     string            `json:"transaction_id" db:"transaction_id"`
	CheckoutRequestID *string           `json:"checkout_request_id" db:"checkout_request_id"`
	Phone             string            `json:"phone" db:"phone"`
	Amount            decimal.Decimal   `json:"amount" db:"amount"`
	Reference         string            `json:"reference" db:"reference"`
	Status            TransactionStatus `json:"status" db:"status"`
	ResultCode        *string           `json:"result_code" db:"result_code"`
	ResultDescription string            `json:"result_description" db:"result_description"`
	Timestamp         string            `json:"timestamp" db:"timestamp"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// IsPlaceholder reports whether the provider id has not been attached yet
func (t *Transaction) IsPlaceholder() bool {
	return strings.HasPrefix(t.TransactionID, PlaceholderPrefix)
}

// PlaceholderTransactionID derives the id a transaction carries until the provider assigns one.
// The amount is truncated toward zero.
func PlaceholderTransactionID(phone string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s%s-%d", PlaceholderPrefix, phone, amount.IntPart())
}
