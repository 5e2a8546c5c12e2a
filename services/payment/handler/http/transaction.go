package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/utils"
)

// ListTransactions handles GET /api/transactions/
func (h *PaymentHandler) ListTransactions(c echo.Context) error {
	txs, err := h.paymentUC.ListTransactions(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	if txs == nil {
		txs = []*models.Transaction{}
	}

	return utils.SuccessResponse(c, http.StatusOK, "latest transactions", map[string]interface{}{
		"items": txs,
		"count": len(txs),
	})
}

// GetTransaction handles GET /api/transactions/:id
func (h *PaymentHandler) GetTransaction(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	tx, err := h.paymentUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "transaction", tx)
}

// GetTransactionByReference handles GET /api/transactions/provider/:transaction_id
func (h *PaymentHandler) GetTransactionByReference(c echo.Context) error {
	transactionID := strings.TrimSpace(c.Param("transaction_id"))
	if transactionID == "" {
		return utils.BadRequestResponse(c, "Invalid transaction id")
	}

	tx, err := h.paymentUC.GetTransactionByReference(c.Request().Context(), transactionID)
	if err != nil {
		return respondError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "transaction", tx)
}
