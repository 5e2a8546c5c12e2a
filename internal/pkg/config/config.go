package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file when running locally and then reads the process environment
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv(newEnvReader())
}

func newEnvReader() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "stkpush")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "dev")

	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8000)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 30)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_DATABASE", "stkpush")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQ_TOPIC", "payments")

	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("RATE_LIMIT_LIMIT", 10)
	v.SetDefault("RATE_LIMIT_PERIOD_SECONDS", 60)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("LIPANA_API_BASE", "https://api.lipana.io")
	v.SetDefault("LIPANA_STK_PATH", "/v1/transactions/push-stk")
	v.SetDefault("LIPANA_SKIP_DNS_CHECK", true)
	v.SetDefault("LIPANA_TIMEOUT_SECONDS", 10)

	return v
}

func loadConfigFromEnv(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.PublicBaseURL = v.GetString("PUBLIC_BASE_URL")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.AutoMigrate = v.GetBool("DB_AUTO_MIGRATE")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.Address = v.GetString("NSQ_ADDRESS")
	configs.NSQ.Topic = v.GetString("NSQ_TOPIC")

	// Rate limit config
	configs.RateLimit.Enabled = v.GetBool("RATE_LIMIT_ENABLED")
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_LIMIT")
	configs.RateLimit.PeriodSeconds = v.GetInt("RATE_LIMIT_PERIOD_SECONDS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	// Lipana config; mocking follows debug unless set explicitly
	v.SetDefault("LIPANA_ENABLE_MOCK", configs.App.Debug)
	configs.Lipana.APIBase = v.GetString("LIPANA_API_BASE")
	configs.Lipana.STKPath = v.GetString("LIPANA_STK_PATH")
	configs.Lipana.SecretKey = v.GetString("LIPANA_SECRET_KEY")
	configs.Lipana.SkipDNSCheck = v.GetBool("LIPANA_SKIP_DNS_CHECK")
	configs.Lipana.EnableMock = v.GetBool("LIPANA_ENABLE_MOCK")
	configs.Lipana.TimeoutSeconds = v.GetInt("LIPANA_TIMEOUT_SECONDS")

	return configs
}

// GetEnv reads an environment variable with a fallback
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
