package payment

import (
	"context"

	"github.com/piresc/stkpush/internal/pkg/models"
)

// PaymentUC defines the STK push business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/stkpush/services/payment PaymentUC
type PaymentUC interface {
	InitiatePayment(ctx context.Context, req models.STKPushRequest) (*models.InitiateOutcome, error)
	ProcessWebhook(ctx context.Context, body []byte, signature string) (*models.WebhookResult, error)
	ListTransactions(ctx context.Context) ([]*models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	GetTransactionByReference(ctx context.Context, transactionID string) (*models.Transaction, error)
}
