package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/piresc/stkpush/internal/utils"
	"github.com/shopspring/decimal"
)

// WebhookPayload is a provider notification after parsing.
// Pointer fields are nil when the provider omitted them.
type WebhookPayload struct {
	TransactionID     string
	CheckoutRequestID *string
	Amount            *decimal.Decimal
	Phone             *string
	Reference         *string
	Timestamp         *string
	// Status is only set for a terminal status the store may settle to
	Status            *TransactionStatus
	ResultCode        *string
	ResultDescription *string
}

type webhookBody struct {
	TransactionID     interface{} `json:"transaction_id"`
	CheckoutRequestID *string     `json:"checkout_request_id"`
	Amount            interface{} `json:"amount"`
	Phone             interface{} `json:"phone"`
	Reference         interface{} `json:"reference"`
	Timestamp         interface{} `json:"timestamp"`
	Status            *string     `json:"status"`
	ResultCode        interface{} `json:"result_code"`
	ResultDescription *string     `json:"result_description"`
}

// ParseWebhookPayload decodes a raw webhook body. An empty body decodes as an empty object.
// Failures wrap ErrMalformedWebhook.
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw webhookBody
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
	}

	payload := &WebhookPayload{
		TransactionID:     scalarString(raw.TransactionID),
		CheckoutRequestID: nonEmpty(raw.CheckoutRequestID),
		Phone:             optionalScalar(raw.Phone),
		Reference:         optionalScalar(raw.Reference),
		Timestamp:         optionalScalar(raw.Timestamp),
		ResultDescription: raw.ResultDescription,
	}

	if raw.Amount != nil {
		amount, err := utils.ParseAmount(raw.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedWebhook, err)
		}
		payload.Amount = &amount
	}

	if code := scalarString(raw.ResultCode); code != "" {
		payload.ResultCode = &code
	}

	if raw.Status != nil {
		status := TransactionStatus(strings.ToLower(strings.TrimSpace(*raw.Status)))
		if status.IsTerminal() {
			payload.Status = &status
		}
	}

	return payload, nil
}

func scalarString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	}
	return ""
}

// optionalScalar keeps a string or number field as text; absent, empty and non-scalar values are nil
func optionalScalar(v interface{}) *string {
	if s := scalarString(v); s != "" {
		return &s
	}
	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// WebhookResult is what a processed webhook reports back
type WebhookResult struct {
	Created     bool
	Transaction *Transaction
}
