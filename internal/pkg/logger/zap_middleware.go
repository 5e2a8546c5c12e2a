package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/requestcontext"
)

// ZapEchoMiddleware creates access-log middleware for Echo using the Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the error so the logged status is the real one
				c.Error(err)
			}

			ctx := c.Request().Context()
			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				requestcontext.GetRequestID(ctx),
				requestcontext.GetTraceID(ctx),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
