package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/utils"
)

// routerMessages replaces echo's default texts for errors raised before a handler runs
var routerMessages = map[int]string{
	http.StatusNotFound:              "Not found",
	http.StatusMethodNotAllowed:      "Method not allowed",
	http.StatusRequestEntityTooLarge: "Request body too large",
}

// HTTPErrorHandler renders errors that reach echo as the response envelope
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := routerMessages[status]; ok {
			message = m
		} else if he.Message != nil {
			message = fmt.Sprint(he.Message)
		} else {
			message = http.StatusText(status)
		}
	} else {
		logger.ErrorCtx(c.Request().Context(), "Unhandled request error", logger.Err(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = utils.ErrorResponseHandler(c, status, message, "", nil)
	}
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to write error response", logger.Err(err))
	}
}
