package usecase

import (
	"context"
	"errors"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/pkg/requestcontext"
	"github.com/piresc/stkpush/services/payment"
)

// paymentUC implements the payment.PaymentUC interface
type paymentUC struct {
	cfg     *models.Config
	repo    payment.TransactionRepo
	gateway payment.PaymentGW
	guard   payment.ReachabilityGW
	events  payment.EventGW
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payment.TransactionRepo,
	gateway payment.PaymentGW,
	guard payment.ReachabilityGW,
	events payment.EventGW,
) (payment.PaymentUC, error) {
	if cfg == nil {
		return nil, errors.New("payment usecase: config is required")
	}
	if repo == nil || gateway == nil || guard == nil {
		return nil, errors.New("payment usecase: repository, gateway and guard are required")
	}
	return &paymentUC{
		cfg:     cfg,
		repo:    repo,
		gateway: gateway,
		guard:   guard,
		events:  events,
	}, nil
}

// publish sends a lifecycle event; failures are logged and never reach the caller
func (uc *paymentUC) publish(ctx context.Context, eventType models.TransactionEventType, tx *models.Transaction) {
	if uc.events == nil {
		return
	}
	event := models.NewTransactionEvent(eventType, tx, requestcontext.GetTraceID(ctx))
	if err := uc.events.PublishTransactionEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transaction event",
			logger.String("event", string(eventType)),
			logger.Int64("id", tx.ID),
			logger.Err(err))
	}
}
