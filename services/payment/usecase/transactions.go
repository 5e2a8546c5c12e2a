package usecase

import (
	"context"
	"errors"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
)

const recentTransactionsLimit = 50

// ListTransactions returns the latest transactions, newest first
func (uc *paymentUC) ListTransactions(ctx context.Context) ([]*models.Transaction, error) {
	txs, err := uc.repo.ListRecentTransactions(ctx, recentTransactionsLimit)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to list transactions", logger.Err(err))
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindInternal,
			Message: "Failed to load transactions",
			Err:     err,
		}
	}
	return txs, nil
}

// GetTransaction looks a transaction up by its local id
func (uc *paymentUC) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return nil, lookupError(ctx, err, logger.Int64("id", id))
	}
	return tx, nil
}

// GetTransactionByReference looks a transaction up by its placeholder or provider transaction id
func (uc *paymentUC) GetTransactionByReference(ctx context.Context, transactionID string) (*models.Transaction, error) {
	tx, err := uc.repo.GetTransactionByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, lookupError(ctx, err, logger.String("transaction_id", transactionID))
	}
	return tx, nil
}

func lookupError(ctx context.Context, err error, key logger.Field) error {
	if errors.Is(err, models.ErrTransactionNotFound) {
		return &models.PaymentError{
			Kind:    models.ErrorKindNotFound,
			Message: "Transaction not found",
			Err:     err,
		}
	}
	logger.ErrorCtx(ctx, "Failed to get transaction", key, logger.Err(err))
	return &models.PaymentError{
		Kind:    models.ErrorKindInternal,
		Message: "Failed to load transaction",
		Err:     err,
	}
}
