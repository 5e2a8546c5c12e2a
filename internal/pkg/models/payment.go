package models

import (
	"encoding/json"
	"net/http"
)

// STKPushRequest is the client body for POST /api/stk-push/.
// Amount stays untyped so both JSON numbers and numeric strings are accepted.
type STKPushRequest struct {
	Phone     string      `json:"phone"`
	Amount    interface{} `json:"amount"`
	Reference string      `json:"reference"`
	// CallbackURL is filled by the handler, never by the client
	CallbackURL string `json:"-"`
}

// STKPushPayload is the body sent to the provider
type STKPushPayload struct {
	Phone       string `json:"phone"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url"`
}

// GatewayResponse is a provider reply that made it back over the wire
type GatewayResponse struct {
	StatusCode int
	Body       []byte
	// Payload is nil when Body is not a JSON object
	Payload map[string]interface{}
}

// NewGatewayResponse decodes body when it is a JSON object
func NewGatewayResponse(statusCode int, body []byte) *GatewayResponse {
	resp := &GatewayResponse{StatusCode: statusCode, Body: body}
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil && payload != nil {
		resp.Payload = payload
	}
	return resp
}

// IsJSON reports whether the body decoded to a JSON object
func (r *GatewayResponse) IsJSON() bool {
	return r.Payload != nil
}

// IsSuccess reports a 200 or 201 reply
func (r *GatewayResponse) IsSuccess() bool {
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusCreated
}

func (r *GatewayResponse) data() map[string]interface{} {
	data, _ := r.Payload["data"].(map[string]interface{})
	return data
}

func (r *GatewayResponse) dataString(key string) string {
	value, _ := r.data()[key].(string)
	return value
}

// ProviderTransactionID returns data.transactionId, or "" when absent
func (r *GatewayResponse) ProviderTransactionID() string {
	return r.dataString("transactionId")
}

// CheckoutRequestID returns data.checkoutRequestID when present
func (r *GatewayResponse) CheckoutRequestID() *string {
	if id := r.dataString("checkoutRequestID"); id != "" {
		return &id
	}
	return nil
}

// ProviderMessage returns data.message, or "" when absent
func (r *GatewayResponse) ProviderMessage() string {
	return r.dataString("message")
}

// ForwardedData is what the client receives on success: data when non-empty, else the whole body
func (r *GatewayResponse) ForwardedData() interface{} {
	if data, ok := r.Payload["data"]; ok && truthy(data) {
		return data
	}
	return r.Payload
}

// ErrorDetail is the upstream error field, or the serialized body cut to 200 characters
func (r *GatewayResponse) ErrorDetail() string {
	if raw, ok := r.Payload["error"]; ok && truthy(raw) {
		if s, ok := raw.(string); ok {
			return s
		}
		if encoded, err := json.Marshal(raw); err == nil {
			return string(encoded)
		}
	}
	encoded, err := json.Marshal(r.Payload)
	if err != nil {
		return ""
	}
	if len(encoded) > 200 {
		encoded = encoded[:200]
	}
	return string(encoded)
}

func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case map[string]interface{}:
		return len(val) > 0
	case []interface{}:
		return len(val) > 0
	case string:
		return val != ""
	case bool:
		return val
	case float64:
		return val != 0
	}
	return true
}

// OutcomeKind tags a non-error initiation result
type OutcomeKind string

const (
	OutcomeForwarded     OutcomeKind = "forwarded"
	OutcomeMocked        OutcomeKind = "mocked"
	OutcomeUpstreamError OutcomeKind = "upstream_error"
)

// InitiateOutcome is the result of an initiation that did not fail locally
type InitiateOutcome struct {
	Kind    OutcomeKind
	Message string
	Data    interface{}
	// StatusCode is the HTTP status to answer with; upstream errors mirror the provider
	StatusCode int
	// Detail carries the upstream error text for OutcomeUpstreamError
	Detail string
	// TransactionID is the local id, zero when nothing was stored
	TransactionID int64
}

// MockedPushData is the synthetic payload returned while mocking the provider
func MockedPushData(phone string, amount int64, reference string) map[string]interface{} {
	return map[string]interface{}{
		"mock":      true,
		"status":    "queued",
		"phone":     phone,
		"amount":    amount,
		"reference": reference,
	}
}
