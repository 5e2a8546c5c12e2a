package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
)

func TestRequestContextMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		assertFunc func(t *testing.T, requestID, traceID string)
	}{
		{
			name: "generates ids",
			assertFunc: func(t *testing.T, requestID, traceID string) {
				assert.NotEmpty(t, requestID)
				assert.Equal(t, requestID, traceID)
			},
		},
		{
			name: "reuses inbound ids",
			headers: map[string]string{
				echo.HeaderXRequestID:        "req-abc",
				requestcontext.HeaderTraceID: "trace-xyz",
			},
			assertFunc: func(t *testing.T, requestID, traceID string) {
				assert.Equal(t, "req-abc", requestID)
				assert.Equal(t, "trace-xyz", traceID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotRequestID, gotTraceID, gotService string
			var stored *requestcontext.RequestContext

			e := echo.New()
			e.Use(RequestContextMiddleware("stkpush"))
			e.GET("/", func(c echo.Context) error {
				ctx := c.Request().Context()
				gotRequestID = requestcontext.GetRequestID(ctx)
				gotTraceID = requestcontext.GetTraceID(ctx)
				gotService = requestcontext.GetServiceName(ctx)
				stored = GetRequestContext(c)
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			tt.assertFunc(t, gotRequestID, gotTraceID)
			assert.Equal(t, "stkpush", gotService)
			assert.Equal(t, gotRequestID, rec.Header().Get(echo.HeaderXRequestID))
			assert.Equal(t, gotTraceID, rec.Header().Get(requestcontext.HeaderTraceID))
			if assert.NotNil(t, stored) {
				assert.Equal(t, gotRequestID, stored.RequestID)
			}
		})
	}
}
