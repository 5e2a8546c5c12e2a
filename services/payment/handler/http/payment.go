package http

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/utils"
	"github.com/piresc/stkpush/services/payment"
)

// WebhookPath is where the provider posts settlement callbacks
const WebhookPath = "/webhooks/mpesa/"

// PaymentHandler handles HTTP requests for STK push payments
type PaymentHandler struct {
	cfg       *models.Config
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment HTTP handler
func NewPaymentHandler(cfg *models.Config, paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{
		cfg:       cfg,
		paymentUC: paymentUC,
	}
}

// InitiateSTKPush handles POST /api/stk-push/
func (h *PaymentHandler) InitiateSTKPush(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return readBodyError(c, err)
	}

	var req models.STKPushRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid JSON")
	}
	req.CallbackURL = h.callbackURL(c)

	ctx := c.Request().Context()
	logger.InfoCtx(ctx, "Received STK push request",
		logger.String("phone", utils.MaskMSISDN(req.Phone)),
		logger.String("client_ip", c.RealIP()))

	outcome, err := h.paymentUC.InitiatePayment(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	if outcome.Kind == models.OutcomeUpstreamError {
		return utils.ErrorResponseHandler(c, outcome.StatusCode, outcome.Message, outcome.Detail, nil)
	}
	return utils.SuccessResponse(c, outcome.StatusCode, outcome.Message, outcome.Data)
}

// callbackURL points the provider back at this service's webhook endpoint
func (h *PaymentHandler) callbackURL(c echo.Context) string {
	base := strings.TrimRight(strings.TrimSpace(h.cfg.App.PublicBaseURL), "/")
	if base == "" {
		base = c.Scheme() + "://" + c.Request().Host
	}
	return base + WebhookPath
}
