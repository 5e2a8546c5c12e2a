package models

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	RateLimit RateLimitConfig
	Lipana    LipanaConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	// PublicBaseURL is the externally reachable origin used to build the webhook callback URL.
	// Empty means derive it from the inbound request.
	PublicBaseURL string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// DSN renders the PostgreSQL connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

// RedisConfig contains Redis connection configuration.
// An empty Host disables Redis backed features.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ producer configuration.
// An empty Address disables event publishing.
type NSQConfig struct {
	Address string
	Topic   string
}

// RateLimitConfig bounds STK push initiations per client IP
type RateLimitConfig struct {
	Enabled       bool
	Limit         int
	PeriodSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// LipanaConfig holds the upstream payment provider settings
type LipanaConfig struct {
	APIBase        string
	STKPath        string
	SecretKey      string
	SkipDNSCheck   bool
	EnableMock     bool
	TimeoutSeconds int
}

// Timeout is the bound applied to each outbound STK push call
func (c LipanaConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BaseURL returns APIBase without trailing slashes
func (c LipanaConfig) BaseURL() string {
	return strings.TrimRight(c.APIBase, "/")
}

// Path returns STKPath with exactly one leading slash
func (c LipanaConfig) Path() string {
	return "/" + strings.TrimLeft(c.STKPath, "/")
}

// Host extracts the hostname the DNS guard resolves
func (c LipanaConfig) Host() string {
	u, err := url.Parse(c.BaseURL())
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// Validate rejects configurations the service must not start with
func (c *Config) Validate() error {
	if c.Lipana.SecretKey == "" && !c.App.Debug {
		return errors.New("LIPANA_SECRET_KEY must be set when APP_DEBUG is false")
	}
	if c.Lipana.APIBase == "" {
		return errors.New("LIPANA_API_BASE must not be empty")
	}
	if u, err := url.Parse(c.Lipana.BaseURL()); err != nil || u.Host == "" {
		return fmt.Errorf("LIPANA_API_BASE is not an absolute URL: %q", c.Lipana.APIBase)
	}
	if c.RateLimit.Enabled && c.RateLimit.Limit <= 0 {
		return errors.New("RATE_LIMIT_LIMIT must be positive when rate limiting is enabled")
	}
	return nil
}
