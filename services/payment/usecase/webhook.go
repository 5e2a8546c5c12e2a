package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/metrics"
	"github.com/piresc/stkpush/internal/pkg/models"
)

// ProcessWebhook authenticates a provider callback and reconciles it into the store
func (uc *paymentUC) ProcessWebhook(ctx context.Context, body []byte, signature string) (*models.WebhookResult, error) {
	result, err := uc.processWebhook(ctx, body, signature)
	metrics.RecordWebhook(webhookLabel(result, err))
	return result, err
}

func (uc *paymentUC) processWebhook(ctx context.Context, body []byte, signature string) (*models.WebhookResult, error) {
	if signature == "" {
		return nil, models.NewPaymentError(models.ErrorKindMissingSignature, "Missing signature")
	}
	if !VerifySignature(uc.cfg.Lipana.SecretKey, body, signature) {
		logger.WarnCtx(ctx, "Rejected webhook with invalid signature")
		return nil, models.NewPaymentError(models.ErrorKindInvalidSignature, "Invalid signature")
	}

	payload, err := models.ParseWebhookPayload(body)
	if err != nil {
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindInvalidJSON,
			Message: "Invalid JSON",
			Err:     err,
		}
	}
	if payload.TransactionID == "" {
		return nil, models.NewPaymentError(models.ErrorKindMissingField, "transaction_id is required")
	}

	tx, created, err := uc.repo.UpsertFromWebhook(ctx, payload)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to reconcile webhook",
			logger.String("transaction_id", payload.TransactionID),
			logger.Err(err))
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindInternal,
			Message: "Failed to record webhook",
			Err:     err,
		}
	}

	logger.InfoCtx(ctx, "Webhook processed",
		logger.String("transaction_id", tx.TransactionID),
		logger.String("status", string(tx.Status)),
		logger.Bool("created", created),
		logger.Bool("placeholder", tx.IsPlaceholder()))
	uc.publish(ctx, models.EventPaymentReconciled, tx)

	return &models.WebhookResult{Created: created, Transaction: tx}, nil
}

// VerifySignature reports whether signature is the hex HMAC-SHA256 of body under secret
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func webhookLabel(result *models.WebhookResult, err error) string {
	if err != nil {
		var paymentErr *models.PaymentError
		if errors.As(err, &paymentErr) {
			return string(paymentErr.Kind)
		}
		return string(models.ErrorKindInternal)
	}
	if result.Created {
		return "created"
	}
	return "updated"
}
