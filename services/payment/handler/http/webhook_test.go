package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentHandler_MpesaWebhook(t *testing.T) {
	const body = `{"transaction_id":"TXN-9","amount":50}`

	t.Run("non POST is acknowledged", func(t *testing.T) {
		handler, _ := newTestHandler(t, "")
		c, rec := newJSONContext(http.MethodGet, "/webhooks/mpesa/", "")

		require.NoError(t, handler.MpesaWebhook(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "Mpesa Webhook OK", env.Message)
		assert.Empty(t, env.Data)
	})

	t.Run("passes raw body and signature", func(t *testing.T) {
		handler, mockUC := newTestHandler(t, "")
		mockUC.EXPECT().
			ProcessWebhook(gomock.Any(), []byte(body), "abc123").
			Return(&models.WebhookResult{Created: true}, nil)

		c, rec := newJSONContext(http.MethodPost, "/webhooks/mpesa/", body)
		c.Request().Header.Set(SignatureHeader, "abc123")

		require.NoError(t, handler.MpesaWebhook(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "Webhook processed", env.Message)
		assert.Equal(t, true, env.Data["created"])
	})

	t.Run("replay reports created false", func(t *testing.T) {
		handler, mockUC := newTestHandler(t, "")
		mockUC.EXPECT().
			ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&models.WebhookResult{Created: false}, nil)

		c, rec := newJSONContext(http.MethodPost, "/webhooks/mpesa/", body)
		c.Request().Header.Set(SignatureHeader, "abc123")

		require.NoError(t, handler.MpesaWebhook(c))

		env := decodeEnvelope(t, rec)
		assert.Equal(t, false, env.Data["created"])
	})

	rejections := []struct {
		name    string
		kind    models.ErrorKind
		message string
	}{
		{name: "missing signature", kind: models.ErrorKindMissingSignature, message: "Missing signature"},
		{name: "invalid signature", kind: models.ErrorKindInvalidSignature, message: "Invalid signature"},
		{name: "invalid JSON", kind: models.ErrorKindInvalidJSON, message: "Invalid JSON"},
		{name: "missing field", kind: models.ErrorKindMissingField, message: "transaction_id is required"},
	}
	for _, tt := range rejections {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockUC := newTestHandler(t, "")
			mockUC.EXPECT().
				ProcessWebhook(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, models.NewPaymentError(tt.kind, tt.message))

			c, rec := newJSONContext(http.MethodPost, "/webhooks/mpesa/", body)

			require.NoError(t, handler.MpesaWebhook(c))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, tt.message, env.Message)
		})
	}
}
