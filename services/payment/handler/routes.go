package handler

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/services/payment"
	httpHandler "github.com/piresc/stkpush/services/payment/handler/http"
)

// Handler combines all handlers for the payment service
type Handler struct {
	paymentHTTP *httpHandler.PaymentHandler
}

// NewHandler creates a new combined handler
func NewHandler(cfg *models.Config, paymentUC payment.PaymentUC) *Handler {
	return &Handler{
		paymentHTTP: httpHandler.NewPaymentHandler(cfg, paymentUC),
	}
}

// MaxBodySize bounds the initiation and webhook bodies, both read whole into memory
const MaxBodySize = "64K"

// RegisterRoutes registers all HTTP routes. initiationLimiter may be nil.
func (h *Handler) RegisterRoutes(e *echo.Echo, initiationLimiter echo.MiddlewareFunc) {
	bodyLimit := echomw.BodyLimit(MaxBodySize)

	stkMiddleware := []echo.MiddlewareFunc{bodyLimit}
	if initiationLimiter != nil {
		stkMiddleware = append(stkMiddleware, initiationLimiter)
	}

	// STK push initiation, with and without the trailing slash
	e.POST("/api/stk-push/", h.paymentHTTP.InitiateSTKPush, stkMiddleware...)
	e.POST("/api/stk-push", h.paymentHTTP.InitiateSTKPush, stkMiddleware...)

	// Provider callbacks; non-POST methods answer a liveness acknowledgement
	e.Any(httpHandler.WebhookPath, h.paymentHTTP.MpesaWebhook, bodyLimit)
	e.Any("/webhooks/mpesa", h.paymentHTTP.MpesaWebhook, bodyLimit)

	transactions := e.Group("/api/transactions")
	transactions.GET("", h.paymentHTTP.ListTransactions)
	transactions.GET("/", h.paymentHTTP.ListTransactions)
	transactions.GET("/:id", h.paymentHTTP.GetTransaction)
	transactions.GET("/provider/:transaction_id", h.paymentHTTP.GetTransactionByReference)
}
