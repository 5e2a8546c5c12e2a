package logger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/requestcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core)
	return &ZapLogger{Logger: l, sugar: l.Sugar()}, logs
}

func useGlobal(t *testing.T, l *ZapLogger) {
	t.Helper()
	mu.RLock()
	previous := globalLogger
	mu.RUnlock()
	SetGlobalLogger(l)
	t.Cleanup(func() { SetGlobalLogger(previous) })
}

func TestNewZapLogger(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := t.TempDir() + "/logs/stkpush.log"
		l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "stkpush"})
		require.NoError(t, err)
		assert.Equal(t, path, l.GetFilePath())
		assert.NoError(t, l.Close())
	})

	t.Run("unknown level falls back", func(t *testing.T) {
		l, err := NewZapLogger(ZapConfig{Level: "loud"})
		require.NoError(t, err)
		assert.NotNil(t, l.Sugar())
	})
}

func TestCtxHelpersCarryRequestIDs(t *testing.T) {
	l, logs := newObservedLogger()
	useGlobal(t, l)

	ctx := requestcontext.WithRequestContext(context.Background(), &requestcontext.RequestContext{
		RequestID: "req-1",
		TraceID:   "trace-1",
	})

	InfoCtx(ctx, "STK push sent", String("phone", "2547****6463"))
	WarnCtx(context.Background(), "no ids")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "2547****6463", fields["phone"])

	assert.NotContains(t, entries[1].ContextMap(), "request_id")
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}

func TestLogHTTPRequestLevels(t *testing.T) {
	tests := []struct {
		status    int
		err       error
		wantLevel zapcore.Level
		wantMsg   string
	}{
		{http.StatusOK, nil, zapcore.InfoLevel, "Request processed"},
		{http.StatusBadRequest, nil, zapcore.WarnLevel, "Client error"},
		{http.StatusBadGateway, errors.New("upstream"), zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			l, logs := newObservedLogger()
			l.LogHTTPRequest(http.MethodPost, "/api/stk-push/", "192.0.2.1", "req", "trace", tt.status, 15*time.Millisecond, tt.err)

			entries := logs.AllUntimed()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, tt.wantMsg, entries[0].Message)
			assert.Equal(t, int64(tt.status), entries[0].ContextMap()["status"])
		})
	}
}

func TestZapEchoMiddleware(t *testing.T) {
	l, logs := newObservedLogger()

	e := echo.New()
	e.GET("/api/transactions/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	}, ZapEchoMiddleware(l))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/transactions/9?x=1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/transactions/9?x=1", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
}
