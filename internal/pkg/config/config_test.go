package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "https://api.lipana.io", cfg.Lipana.APIBase)
	assert.Equal(t, "/v1/transactions/push-stk", cfg.Lipana.STKPath)
	assert.True(t, cfg.Lipana.SkipDNSCheck)
	assert.True(t, cfg.Lipana.EnableMock, "mock follows debug by default")
	assert.Equal(t, 10, cfg.Lipana.TimeoutSeconds)
	assert.Equal(t, "", cfg.NSQ.Address)
	assert.Equal(t, "payments", cfg.NSQ.Topic)
}

func TestInitConfigFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_DEBUG", "False")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LIPANA_API_BASE", "https://sandbox.lipana.io/")
	t.Setenv("LIPANA_SECRET_KEY", "sk_live_abc")
	t.Setenv("LIPANA_SKIP_DNS_CHECK", "false")
	t.Setenv("LIPANA_TIMEOUT_SECONDS", "5")
	t.Setenv("PUBLIC_BASE_URL", "https://pay.example.co.ke")
	t.Setenv("NSQ_ADDRESS", "nsqd:4150")

	cfg := InitConfig("does-not-exist.env")

	assert.False(t, cfg.App.Debug)
	assert.False(t, cfg.Lipana.EnableMock, "mock follows debug by default")
	assert.False(t, cfg.Lipana.SkipDNSCheck)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://sandbox.lipana.io", cfg.Lipana.BaseURL())
	assert.Equal(t, "sk_live_abc", cfg.Lipana.SecretKey)
	assert.Equal(t, 5, cfg.Lipana.TimeoutSeconds)
	assert.Equal(t, "https://pay.example.co.ke", cfg.App.PublicBaseURL)
	assert.Equal(t, "nsqd:4150", cfg.NSQ.Address)
	assert.NoError(t, cfg.Validate())
}

func TestInitConfigExplicitMockOverridesDebug(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_DEBUG", "true")
	t.Setenv("LIPANA_ENABLE_MOCK", "false")

	cfg := InitConfig("does-not-exist.env")

	assert.True(t, cfg.App.Debug)
	assert.False(t, cfg.Lipana.EnableMock)
}

func TestInitConfigLoadsDotEnvLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIPANA_SECRET_KEY=from-dotenv\nSTKPUSH_TEST_MARKER=1\n"), 0600))

	t.Setenv("APP_ENV", "local")
	// register for cleanup before godotenv sets them
	t.Setenv("LIPANA_SECRET_KEY", "")
	t.Setenv("STKPUSH_TEST_MARKER", "")
	os.Unsetenv("LIPANA_SECRET_KEY")
	os.Unsetenv("STKPUSH_TEST_MARKER")

	cfg := InitConfig(path)

	assert.Equal(t, "from-dotenv", cfg.Lipana.SecretKey)
}
