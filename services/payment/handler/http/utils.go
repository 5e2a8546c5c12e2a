package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/utils"
)

// readBodyError keeps echo's body limit rejection as a 413 and treats any other read failure as bad JSON
func readBodyError(c echo.Context, err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	return utils.BadRequestResponse(c, "Invalid JSON")
}

// respondError maps a usecase error onto the envelope
func respondError(c echo.Context, err error) error {
	var paymentErr *models.PaymentError
	if errors.As(err, &paymentErr) {
		return utils.ErrorResponseHandler(c, paymentErr.HTTPStatus(), paymentErr.Message, paymentErr.Detail, paymentErr.Data)
	}

	logger.ErrorCtx(c.Request().Context(), "Unclassified handler error", logger.Err(err))
	return utils.InternalServerErrorResponse(c, "", "")
}
