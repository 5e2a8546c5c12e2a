package models

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []TransactionStatus{
		TransactionStatusPending,
		TransactionStatusCompleted,
		TransactionStatusFailed,
		TransactionStatusTimeout,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			expected := from == TransactionStatusPending && to != TransactionStatusPending
			assert.Equal(t, expected, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(TransactionStatusPending, TransactionStatus("cancelled")))
}

func TestTransactionStatusIsTerminal(t *testing.T) {
	assert.True(t, TransactionStatusTimeout.IsTerminal())
	assert.False(t, TransactionStatus("success").IsTerminal())
	assert.False(t, TransactionStatusPending.IsTerminal())
}

func TestPlaceholderTransactionID(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"whole amount", decimal.NewFromInt(50), "PENDING-254700686463-50"},
		{"fraction truncated", decimal.RequireFromString("99.99"), "PENDING-254700686463-99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := PlaceholderTransactionID("254700686463", tt.amount)
			assert.Equal(t, tt.expected, id)

			tx := &Transaction{TransactionID: id}
			assert.True(t, tx.IsPlaceholder())
		})
	}

	assert.False(t, (&Transaction{TransactionID: "TXN123"}).IsPlaceholder())
}

func TestErrorKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind   ErrorKind
		status int
	}{
		{ErrorKindInvalidRequest, http.StatusBadRequest},
		{ErrorKindGatewayUnreachable, http.StatusServiceUnavailable},
		{ErrorKindUpstreamInvalidResponse, http.StatusBadGateway},
		{ErrorKindUpstreamRequestFailed, http.StatusBadGateway},
		{ErrorKindRequestTimeout, http.StatusGatewayTimeout},
		{ErrorKindNetworkError, http.StatusServiceUnavailable},
		{ErrorKindInvalidSignature, http.StatusBadRequest},
		{ErrorKindDuplicateTransaction, http.StatusConflict},
		{ErrorKindNotFound, http.StatusNotFound},
		{ErrorKind("Unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.status, (&PaymentError{Kind: tt.kind}).HTTPStatus())
		})
	}
}
