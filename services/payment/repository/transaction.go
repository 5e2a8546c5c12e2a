package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
)

const uniqueViolationCode = "23505"

const transactionColumns = `id, transaction_id, checkout_request_id, phone, amount, reference,
	status, result_code, result_description, timestamp, created_at, updated_at`

type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TransactionRepo {
	logger.Info("Initializing transaction repository")
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTransaction inserts a new transaction and fills in its id and timestamps
func (r *TransactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, phone, amount, reference, status, result_description, timestamp
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		tx.TransactionID,
		tx.Phone,
		tx.Amount,
		tx.Reference,
		tx.Status,
		tx.ResultDescription,
		tx.Timestamp,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", models.ErrDuplicateTransactionID, tx.TransactionID)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// AttachProviderReference replaces the placeholder transaction_id with the provider's id.
// Rows whose id no longer starts with the placeholder prefix are left alone.
func (r *TransactionRepo) AttachProviderReference(ctx context.Context, id int64, transactionID string, checkoutRequestID *string, description string) error {
	query := `
		UPDATE transactions
		SET transaction_id = $1,
			checkout_request_id = COALESCE($2, checkout_request_id),
			result_description = $3,
			updated_at = NOW()
		WHERE id = $4 AND transaction_id LIKE $5
	`

	result, err := r.db.ExecContext(ctx, query, transactionID, checkoutRequestID, description, id, models.PlaceholderPrefix+"%")
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", models.ErrDuplicateTransactionID, transactionID)
		}
		return fmt.Errorf("failed to attach provider reference: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: id %d", models.ErrPlaceholderReplaced, id)
	}

	return nil
}

// TransitionStatus moves a pending transaction to a terminal status.
// It reports false without error when the transaction had already left pending.
func (r *TransactionRepo) TransitionStatus(ctx context.Context, id int64, to models.TransactionStatus, description string) (bool, error) {
	if !models.CanTransition(models.TransactionStatusPending, to) {
		return false, fmt.Errorf("%w: pending -> %s", models.ErrInvalidTransition, to)
	}

	query := `
		UPDATE transactions
		SET status = $1, result_description = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, to, description, id, models.TransactionStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to transition transaction status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rows == 1, nil
}

type upsertedTransaction struct {
	models.Transaction
	Created bool `db:"created"`
}

// UpsertFromWebhook reconciles a provider notification in one statement.
// Fields missing from the payload keep their stored values; the status only
// moves while the stored row is still pending.
func (r *TransactionRepo) UpsertFromWebhook(ctx context.Context, payload *models.WebhookPayload) (*models.Transaction, bool, error) {
	query := `
		INSERT INTO transactions (
			transaction_id, checkout_request_id, phone, amount, reference,
			status, result_code, result_description, timestamp
		) VALUES (
			$1, $2, COALESCE($3::varchar, ''), COALESCE($4::numeric, 0), COALESCE($5::varchar, ''),
			COALESCE($6::varchar, 'pending'), $7, COALESCE($8::text, ''), COALESCE($9::varchar, '')
		)
		ON CONFLICT (transaction_id) DO UPDATE SET
			checkout_request_id = COALESCE(EXCLUDED.checkout_request_id, transactions.checkout_request_id),
			phone = COALESCE($3::varchar, transactions.phone),
			amount = COALESCE($4::numeric, transactions.amount),
			reference = COALESCE($5::varchar, transactions.reference),
			timestamp = COALESCE($9::varchar, transactions.timestamp),
			status = CASE
				WHEN transactions.status = 'pending' AND $6::varchar IS NOT NULL THEN $6::varchar
				ELSE transactions.status
			END,
			result_code = COALESCE($7, transactions.result_code),
			result_description = COALESCE($8::text, transactions.result_description),
			updated_at = NOW()
		RETURNING ` + transactionColumns + `, (xmax = 0) AS created
	`

	var status *string
	if payload.Status != nil {
		s := string(*payload.Status)
		status = &s
	}

	var row upsertedTransaction
	err := r.db.QueryRowxContext(
		ctx,
		query,
		payload.TransactionID,
		payload.CheckoutRequestID,
		payload.Phone,
		payload.Amount,
		payload.Reference,
		status,
		payload.ResultCode,
		payload.ResultDescription,
		payload.Timestamp,
	).StructScan(&row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, false, fmt.Errorf("%w: checkout_request_id collides", models.ErrDuplicateTransactionID)
		}
		return nil, false, fmt.Errorf("failed to upsert transaction: %w", err)
	}

	return &row.Transaction, row.Created, nil
}

// GetTransactionByID retrieves a transaction by its local id
func (r *TransactionRepo) GetTransactionByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrTransactionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// GetTransactionByTransactionID retrieves a transaction by placeholder or provider id
func (r *TransactionRepo) GetTransactionByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1`

	var tx models.Transaction
	if err := r.db.GetContext(ctx, &tx, query, transactionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrTransactionNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// ListRecentTransactions returns up to limit transactions, newest first
func (r *TransactionRepo) ListRecentTransactions(ctx context.Context, limit int) ([]*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY id DESC LIMIT $1`

	transactions := []*models.Transaction{}
	if err := r.db.SelectContext(ctx, &transactions, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
