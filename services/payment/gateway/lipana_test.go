package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"syscall"
	"testing"
	"time"

	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lipanaConfig(base string) models.LipanaConfig {
	return models.LipanaConfig{
		APIBase:        base,
		STKPath:        "/v1/transactions/push-stk",
		SecretKey:      "sk_test",
		TimeoutSeconds: 1,
	}
}

func TestLipanaGateway_PushSTK(t *testing.T) {
	payload := models.STKPushPayload{
		Phone:       "254700686463",
		Amount:      50,
		Reference:   "Order-1",
		CallbackURL: "https://pay.example.co.ke/webhooks/mpesa/",
	}

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		assertFunc func(t *testing.T, resp *models.GatewayResponse, err error)
	}{
		{
			name: "accepted push",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/transactions/push-stk", r.URL.Path)
				assert.Equal(t, "sk_test", r.Header.Get("x-api-key"))

				var body map[string]interface{}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "254700686463", body["phone"])
				assert.Equal(t, float64(50), body["amount"])
				assert.Equal(t, "Order-1", body["reference"])
				assert.Equal(t, "https://pay.example.co.ke/webhooks/mpesa/", body["callback_url"])

				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"success":true,"data":{"transactionId":"TXN123","message":"STK push sent"}}`))
			},
			assertFunc: func(t *testing.T, resp *models.GatewayResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, http.StatusCreated, resp.StatusCode)
				assert.Equal(t, "TXN123", resp.ProviderTransactionID())
			},
		},
		{
			name: "non JSON reply is returned, not an error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("<html>Bad Gateway</html>"))
			},
			assertFunc: func(t *testing.T, resp *models.GatewayResponse, err error) {
				require.NoError(t, err)
				assert.False(t, resp.IsJSON())
				assert.Equal(t, "<html>Bad Gateway</html>", string(resp.Body))
			},
		},
		{
			name: "upstream rejection",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				w.Write([]byte(`{"success":false,"error":"Invalid phone number"}`))
			},
			assertFunc: func(t *testing.T, resp *models.GatewayResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
				assert.Equal(t, "Invalid phone number", resp.ErrorDetail())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gw := NewLipanaGateway(lipanaConfig(server.URL + "/"))
			resp, err := gw.PushSTK(context.Background(), payload)
			tt.assertFunc(t, resp, err)
		})
	}
}

func TestLipanaGateway_PushSTK_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	gw := NewLipanaGateway(lipanaConfig(server.URL))
	gw.client.SetTimeout(50 * time.Millisecond)

	resp, err := gw.PushSTK(context.Background(), models.STKPushPayload{Phone: "254700686463", Amount: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrGatewayTimeout)
}

func TestLipanaGateway_PushSTK_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := server.URL
	server.Close()

	gw := NewLipanaGateway(lipanaConfig(addr))
	resp, err := gw.PushSTK(context.Background(), models.STKPushPayload{Phone: "254700686463", Amount: 1})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, models.ErrGatewayNetwork)
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	wrap := func(err error) error {
		return fmt.Errorf("request failed: %w", &url.Error{Op: "Post", URL: "https://api.lipana.io/v1/transactions/push-stk", Err: err})
	}

	tests := []struct {
		name   string
		err    error
		expect error
	}{
		{"dns failure", wrap(&net.OpError{Op: "dial", Err: &net.DNSError{Err: "no such host", Name: "api.lipana.io", IsNotFound: true}}), models.ErrNameResolution},
		{"dns timeout counts as timeout", wrap(&net.DNSError{Err: "timeout", Name: "api.lipana.io", IsTimeout: true}), models.ErrGatewayTimeout},
		{"deadline exceeded", wrap(context.DeadlineExceeded), models.ErrGatewayTimeout},
		{"net timeout", wrap(timeoutErr{}), models.ErrGatewayTimeout},
		{"connection refused", wrap(&net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}), models.ErrGatewayNetwork},
		{"connection reset", wrap(syscall.ECONNRESET), models.ErrGatewayNetwork},
		{"unexpected eof", wrap(errors.New("unexpected EOF")), models.ErrGatewayRequest},
		{"canceled", wrap(context.Canceled), models.ErrGatewayRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyTransportError(tt.err)
			assert.ErrorIs(t, got, tt.expect)
			assert.ErrorIs(t, got, errors.Unwrap(tt.err), "original cause is kept")
		})
	}
}
