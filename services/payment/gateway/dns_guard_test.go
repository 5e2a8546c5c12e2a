package gateway

import (
	"context"
	"net"
	"testing"

	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	addrs  []string
	err    error
	lookup []string
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	f.lookup = append(f.lookup, host)
	return f.addrs, f.err
}

func TestDNSGuard_CheckReachable(t *testing.T) {
	tests := []struct {
		name        string
		skip        bool
		resolver    *fakeResolver
		expectErr   bool
		expectCalls int
	}{
		{
			name:        "resolves",
			resolver:    &fakeResolver{addrs: []string{"203.0.113.10"}},
			expectCalls: 1,
		},
		{
			name:        "lookup failure",
			resolver:    &fakeResolver{err: &net.DNSError{Err: "no such host", Name: "api.lipana.io", IsNotFound: true}},
			expectErr:   true,
			expectCalls: 1,
		},
		{
			name:        "no addresses",
			resolver:    &fakeResolver{},
			expectErr:   true,
			expectCalls: 1,
		},
		{
			name:        "skipped never resolves",
			skip:        true,
			resolver:    &fakeResolver{err: &net.DNSError{Err: "no such host"}},
			expectCalls: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := models.LipanaConfig{APIBase: "https://api.lipana.io/", SkipDNSCheck: tt.skip}
			guard := NewDNSGuard(cfg, tt.resolver)

			err := guard.CheckReachable(context.Background())

			if tt.expectErr {
				assert.ErrorIs(t, err, models.ErrNameResolution)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, tt.resolver.lookup, tt.expectCalls)
			assert.Equal(t, "api.lipana.io", guard.Host())
		})
	}
}

func TestNewDNSGuard_DefaultResolver(t *testing.T) {
	guard := NewDNSGuard(models.LipanaConfig{APIBase: "https://api.lipana.io"}, nil)
	assert.Equal(t, net.DefaultResolver, guard.resolver)
}
