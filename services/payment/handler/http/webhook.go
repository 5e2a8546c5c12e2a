package http

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/utils"
)

// SignatureHeader carries the hex HMAC-SHA256 of the raw webhook body
const SignatureHeader = "X-Lipana-Signature"

// MpesaWebhook handles provider callbacks. Non-POST requests get a liveness acknowledgement.
func (h *PaymentHandler) MpesaWebhook(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return utils.SuccessResponse(c, http.StatusOK, "Mpesa Webhook OK", nil)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return readBodyError(c, err)
	}

	result, err := h.paymentUC.ProcessWebhook(c.Request().Context(), body, c.Request().Header.Get(SignatureHeader))
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", map[string]interface{}{
		"created": result.Created,
	})
}
