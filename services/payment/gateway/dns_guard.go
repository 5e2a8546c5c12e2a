package gateway

import (
	"context"
	"fmt"
	"net"

	"github.com/piresc/stkpush/internal/pkg/models"
)

// HostResolver resolves a hostname; *net.Resolver satisfies it
type HostResolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DNSGuard checks the provider host resolves before a transaction is recorded
type DNSGuard struct {
	resolver HostResolver
	host     string
	skip     bool
}

// NewDNSGuard builds a guard for the configured API base. A nil resolver uses net.DefaultResolver.
func NewDNSGuard(cfg models.LipanaConfig, resolver HostResolver) *DNSGuard {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return &DNSGuard{
		resolver: resolver,
		host:     cfg.Host(),
		skip:     cfg.SkipDNSCheck,
	}
}

// Host returns the hostname being checked
func (g *DNSGuard) Host() string {
	return g.host
}

// CheckReachable resolves the host unless the check is disabled.
// Failures wrap models.ErrNameResolution.
func (g *DNSGuard) CheckReachable(ctx context.Context) error {
	if g.skip {
		return nil
	}
	if g.host == "" {
		return fmt.Errorf("%w: empty host", models.ErrNameResolution)
	}

	addrs, err := g.resolver.LookupHost(ctx, g.host)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrNameResolution, err)
	}
	if len(addrs) == 0 {
		return fmt.Errorf("%w: no addresses for %s", models.ErrNameResolution, g.host)
	}

	return nil
}
