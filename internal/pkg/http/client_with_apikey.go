package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/requestcontext"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "x-api-key"
	// RequestIDHeader propagates the inbound request id downstream
	RequestIDHeader = "X-Request-ID"
)

// APIKeyClient is an HTTP client with API key authentication
type APIKeyClient struct {
	client      *nethttp.Client
	apiKey      string
	baseURL     string
	serviceName string
}

// NewAPIKeyClient creates a client that sends apiKey on every request to baseURL
func NewAPIKeyClient(apiKey, baseURL, serviceName string, timeout time.Duration) *APIKeyClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &APIKeyClient{
		client: &nethttp.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		serviceName: serviceName,
	}
}

// SetTimeout sets the HTTP client timeout
func (c *APIKeyClient) SetTimeout(timeout time.Duration) {
	c.client.Timeout = timeout
}

// Timeout returns the HTTP client timeout
func (c *APIKeyClient) Timeout() time.Duration {
	return c.client.Timeout
}

// BaseURL returns the base URL without trailing slash
func (c *APIKeyClient) BaseURL() string {
	return c.baseURL
}

// Post performs a POST request with API key authentication.
// Transport errors are returned wrapped so callers can still inspect the cause with errors.As.
func (c *APIKeyClient) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// PostRaw performs a POST and reads the whole response body
func (c *APIKeyClient) PostRaw(ctx context.Context, endpoint string, body interface{}) (int, []byte, error) {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return resp.StatusCode, data, nil
}

func (c *APIKeyClient) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		logger.Error("Failed to create HTTP request",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	if requestID := requestcontext.GetRequestID(ctx); requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}

	logger.DebugCtx(ctx, "Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Bool("has_api_key", c.apiKey != ""))

	resp, err := c.client.Do(req)
	if err != nil {
		logger.WarnCtx(ctx, "HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("service", c.serviceName),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("service", c.serviceName),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
