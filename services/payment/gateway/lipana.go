package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"

	httpclient "github.com/piresc/stkpush/internal/pkg/http"
	"github.com/piresc/stkpush/internal/pkg/metrics"
	"github.com/piresc/stkpush/internal/pkg/models"
)

// LipanaGateway sends STK pushes to the Lipana API
type LipanaGateway struct {
	client *httpclient.APIKeyClient
	path   string
}

// NewLipanaGateway creates a gateway bounded by the configured timeout
func NewLipanaGateway(cfg models.LipanaConfig) *LipanaGateway {
	return &LipanaGateway{
		client: httpclient.NewAPIKeyClient(cfg.SecretKey, cfg.BaseURL(), "lipana", cfg.Timeout()),
		path:   cfg.Path(),
	}
}

// PushSTK posts the payload and returns whatever the provider answered.
// An error means no usable reply arrived; it wraps one of the models.ErrGateway* sentinels.
func (g *LipanaGateway) PushSTK(ctx context.Context, payload models.STKPushPayload) (*models.GatewayResponse, error) {
	start := time.Now()
	status, body, err := g.client.PostRaw(ctx, g.path, payload)
	if err != nil {
		metrics.ObserveUpstream(0, time.Since(start))
		return nil, classifyTransportError(err)
	}
	metrics.ObserveUpstream(status, time.Since(start))

	return models.NewGatewayResponse(status, body), nil
}

// classifyTransportError maps a client error onto timeout, name resolution, network or generic request failure
func classifyTransportError(err error) error {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && !dnsErr.IsTimeout {
		return fmt.Errorf("%w: %w", models.ErrNameResolution, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %w", models.ErrGatewayTimeout, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", models.ErrGatewayNetwork, err)
	}

	return fmt.Errorf("%w: %w", models.ErrGatewayRequest, err)
}
