package requestcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey type for context keys to avoid collisions
type ContextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey ContextKey = "request_id"
	// TraceIDKey is the context key for trace ID
	TraceIDKey ContextKey = "trace_id"
	// ServiceNameKey is the context key for service name
	ServiceNameKey ContextKey = "service_name"
)

// HeaderTraceID carries the trace id across service boundaries
const HeaderTraceID = "X-Trace-ID"

// RequestContext holds request-specific information
type RequestContext struct {
	RequestID   string
	TraceID     string
	ServiceName string
	StartTime   time.Time
}

// WithRequestContext adds request context to the given context
func WithRequestContext(ctx context.Context, reqCtx *RequestContext) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey, reqCtx.RequestID)
	ctx = context.WithValue(ctx, TraceIDKey, reqCtx.TraceID)
	ctx = context.WithValue(ctx, ServiceNameKey, reqCtx.ServiceName)
	return ctx
}

// FromEchoContext builds the request context, reusing inbound ids when the caller sent them
func FromEchoContext(c echo.Context) *RequestContext {
	reqCtx := &RequestContext{
		StartTime: time.Now(),
	}

	switch {
	case c.Request().Header.Get(echo.HeaderXRequestID) != "":
		reqCtx.RequestID = c.Request().Header.Get(echo.HeaderXRequestID)
	case c.Response().Header().Get(echo.HeaderXRequestID) != "":
		reqCtx.RequestID = c.Response().Header().Get(echo.HeaderXRequestID)
	default:
		reqCtx.RequestID = uuid.New().String()
	}

	if traceID := c.Request().Header.Get(HeaderTraceID); traceID != "" {
		reqCtx.TraceID = traceID
	} else {
		reqCtx.TraceID = reqCtx.RequestID
	}

	if serviceName, ok := c.Get("service_name").(string); ok {
		reqCtx.ServiceName = serviceName
	}

	return reqCtx
}

// GetRequestID extracts request ID from context
func GetRequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		return reqID
	}
	return ""
}

// GetTraceID extracts trace ID from context
func GetTraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(TraceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// GetServiceName extracts service name from context
func GetServiceName(ctx context.Context) string {
	if serviceName, ok := ctx.Value(ServiceNameKey).(string); ok {
		return serviceName
	}
	return ""
}
