package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared between the store, the gateway and the usecase
var (
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrDuplicateTransactionID = errors.New("transaction_id already exists")
	ErrPlaceholderReplaced    = errors.New("transaction no longer carries a placeholder id")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrMalformedWebhook       = errors.New("malformed webhook payload")

	ErrGatewayTimeout = errors.New("gateway request timed out")
	ErrNameResolution = errors.New("gateway host could not be resolved")
	ErrGatewayNetwork = errors.New("gateway connection failed")
	ErrGatewayRequest = errors.New("gateway request failed")
)

// ErrorKind classifies a business failure and fixes its HTTP status
type ErrorKind string

const (
	ErrorKindInvalidRequest          ErrorKind = "InvalidRequest"
	ErrorKindGatewayUnreachable      ErrorKind = "GatewayUnreachable"
	ErrorKindUpstreamInvalidResponse ErrorKind = "UpstreamInvalidResponse"
	ErrorKindUpstreamRequestFailed   ErrorKind = "UpstreamRequestFailed"
	ErrorKindRequestTimeout          ErrorKind = "RequestTimeout"
	ErrorKindNetworkError            ErrorKind = "NetworkError"
	ErrorKindMissingSignature        ErrorKind = "MissingSignature"
	ErrorKindInvalidSignature        ErrorKind = "InvalidSignature"
	ErrorKindInvalidJSON             ErrorKind = "InvalidJSON"
	ErrorKindMissingField            ErrorKind = "MissingField"
	ErrorKindDuplicateTransaction    ErrorKind = "DuplicateTransaction"
	ErrorKindNotFound                ErrorKind = "NotFound"
	ErrorKindInternal                ErrorKind = "Internal"
)

var errorKindStatus = map[ErrorKind]int{
	ErrorKindInvalidRequest:          http.StatusBadRequest,
	ErrorKindGatewayUnreachable:      http.StatusServiceUnavailable,
	ErrorKindUpstreamInvalidResponse: http.StatusBadGateway,
	ErrorKindUpstreamRequestFailed:   http.StatusBadGateway,
	ErrorKindRequestTimeout:          http.StatusGatewayTimeout,
	ErrorKindNetworkError:            http.StatusServiceUnavailable,
	ErrorKindMissingSignature:        http.StatusBadRequest,
	ErrorKindInvalidSignature:        http.StatusBadRequest,
	ErrorKindInvalidJSON:             http.StatusBadRequest,
	ErrorKindMissingField:            http.StatusBadRequest,
	ErrorKindDuplicateTransaction:    http.StatusConflict,
	ErrorKindNotFound:                http.StatusNotFound,
	ErrorKindInternal:                http.StatusInternalServerError,
}

// HTTPStatus returns the status code a failure of this kind is reported with
func (k ErrorKind) HTTPStatus() int {
	if status, ok := errorKindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// PaymentError is a business failure carrying everything the envelope needs
type PaymentError struct {
	Kind    ErrorKind
	Message string
	Detail  string
	Data    map[string]interface{}
	Err     error
}

// NewPaymentError creates a PaymentError without detail or data
func NewPaymentError(kind ErrorKind, message string) *PaymentError {
	return &PaymentError{Kind: kind, Message: message}
}

func (e *PaymentError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code for the envelope
func (e *PaymentError) HTTPStatus() int {
	return e.Kind.HTTPStatus()
}
