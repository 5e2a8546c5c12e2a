package payment

import (
	"context"

	"github.com/piresc/stkpush/internal/pkg/models"
)

// TransactionRepo defines the interface for transaction persistence.
// Transactions are never removed, so there is no delete.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/stkpush/services/payment TransactionRepo
type TransactionRepo interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	AttachProviderReference(ctx context.Context, id int64, transactionID string, checkoutRequestID *string, description string) error
	TransitionStatus(ctx context.Context, id int64, to models.TransactionStatus, description string) (bool, error)
	UpsertFromWebhook(ctx context.Context, payload *models.WebhookPayload) (*models.Transaction, bool, error)
	GetTransactionByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetTransactionByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error)
}
