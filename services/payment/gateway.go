package payment

import (
	"context"

	"github.com/piresc/stkpush/internal/pkg/models"
)

// PaymentGW sends STK pushes to the provider
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/stkpush/services/payment PaymentGW,ReachabilityGW,EventGW
type PaymentGW interface {
	PushSTK(ctx context.Context, payload models.STKPushPayload) (*models.GatewayResponse, error)
}

// ReachabilityGW checks the provider host resolves before any state is written
type ReachabilityGW interface {
	CheckReachable(ctx context.Context) error
	Host() string
}

// EventGW publishes transaction lifecycle events
type EventGW interface {
	PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error
}
