package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/database"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message"`
	Error   string                 `json:"error"`
	Data    map[string]interface{} `json:"data"`
}

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Name: "stkpush", Debug: true, Version: "1.2.3"},
	}
}

func serve(t *testing.T, e *echo.Echo, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body envelope
	if rec.Header().Get(echo.HeaderContentType) != "" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func newPostgres(t *testing.T, pingErr error) *database.PostgresClient {
	t.Helper()
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	expect := mock.ExpectPing()
	if pingErr != nil {
		expect.WillReturnError(pingErr)
	}
	return database.NewPostgresClientFromDB(sqlx.NewDb(mockDB, "sqlmock"))
}

func TestBuildInfoDefaults(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, "unknown", DefaultBuildInfo.BuildTime)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "2.0.0")
	t.Setenv("GIT_COMMIT", "abc123")
	os.Unsetenv("BUILD_TIME")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

	require.NoError(t, NewPingHandler("stkpush")(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "stkpush", info.ServiceName)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, "unknown", info.BuildTime)
	assert.False(t, info.ServerTime.IsZero())
}

func TestLivenessEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, testConfig(), NewHealthService())

	for _, path := range []string{"/health", "/health/"} {
		rec, body := serve(t, e, path)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, "service healthy", body.Message)
		assert.Equal(t, "stkpush", body.Data["service"])
		assert.Equal(t, true, body.Data["debug"])
	}
}

func TestStatusEndpoint(t *testing.T) {
	tests := []struct {
		name        string
		service     func(t *testing.T) *HealthService
		wantCode    int
		wantMessage string
		wantData    map[string]interface{}
	}{
		{
			name: "database reachable",
			service: func(t *testing.T) *HealthService {
				s := NewHealthService()
				s.AddChecker(DatabaseChecker, NewPostgresHealthChecker(newPostgres(t, nil)))
				return s
			},
			wantCode:    http.StatusOK,
			wantMessage: "Backend and DB reachable",
			wantData:    map[string]interface{}{"db": true},
		},
		{
			name: "database unreachable",
			service: func(t *testing.T) *HealthService {
				s := NewHealthService()
				s.AddChecker(DatabaseChecker, NewPostgresHealthChecker(newPostgres(t, errors.New("connection refused"))))
				return s
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Database connection failed",
			wantData:    map[string]interface{}{},
		},
		{
			name: "no database checker",
			service: func(t *testing.T) *HealthService {
				return NewHealthService()
			},
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Database connection failed",
			wantData:    map[string]interface{}{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			RegisterHealthEndpoints(e, testConfig(), tt.service(t))

			rec, body := serve(t, e, "/api/status")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantData, body.Data)
		})
	}
}

func TestDetailedEndpoint(t *testing.T) {
	t.Run("all dependencies healthy", func(t *testing.T) {
		s := NewHealthService()
		s.AddChecker(DatabaseChecker, NewPostgresHealthChecker(newPostgres(t, nil)))
		s.AddChecker("redis", NewRedisHealthChecker(nil))

		e := echo.New()
		RegisterHealthEndpoints(e, testConfig(), s)
		rec, body := serve(t, e, "/health/detailed")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", body.Data["status"])
		assert.Equal(t, "stkpush", body.Data["service"])
		assert.Equal(t, "1.2.3", body.Data["version"])
		deps := body.Data["dependencies"].(map[string]interface{})
		assert.Len(t, deps, 2)
	})

	t.Run("failing dependency", func(t *testing.T) {
		s := NewHealthService()
		s.AddChecker(DatabaseChecker, NewPostgresHealthChecker(newPostgres(t, nil)))
		s.AddChecker("nsq", CheckerFunc(func(ctx context.Context) error {
			return errors.New("nsqd down")
		}))

		e := echo.New()
		RegisterHealthEndpoints(e, testConfig(), s)
		rec, body := serve(t, e, "/health/detailed")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "service unhealthy", body.Message)
		deps := body.Data["dependencies"].(map[string]interface{})
		nsq := deps["nsq"].(map[string]interface{})
		assert.Equal(t, "unhealthy", nsq["status"])
		assert.Equal(t, "nsqd down", nsq["error"])
	})
}

type stubPinger struct{ err error }

func (s stubPinger) Ping() error { return s.err }

func TestCheckers(t *testing.T) {
	ctx := context.Background()

	assert.Error(t, NewPostgresHealthChecker(nil).CheckHealth(ctx))
	assert.NoError(t, NewRedisHealthChecker(nil).CheckHealth(ctx))
	assert.NoError(t, NewPingerHealthChecker(nil).CheckHealth(ctx))
	assert.NoError(t, NewPingerHealthChecker(stubPinger{}).CheckHealth(ctx))
	assert.EqualError(t, NewPingerHealthChecker(stubPinger{err: errors.New("closed")}).CheckHealth(ctx), "closed")
}
