package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/metrics"
	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/piresc/stkpush/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	msgSTKPushSent          = "STK push sent"
	msgMockedDNS            = "Mocked STK push (DNS resolution failed)"
	msgMockedInvalidReply   = "Mocked STK push (invalid API response)"
	msgMockedConnectionName = "Mocked STK push (connection resolution error)"
	msgUnresolvableHost     = "Cannot resolve Lipana API host"

	timeoutDescription = "Request timeout - please try again"
)

// InitiatePayment validates the request, records a pending transaction and forwards the push upstream
func (uc *paymentUC) InitiatePayment(ctx context.Context, req models.STKPushRequest) (*models.InitiateOutcome, error) {
	outcome, err := uc.initiate(ctx, req)
	metrics.RecordInitiation(initiationLabel(outcome, err))
	return outcome, err
}

func (uc *paymentUC) initiate(ctx context.Context, req models.STKPushRequest) (*models.InitiateOutcome, error) {
	amount, err := validateInitiation(req)
	if err != nil {
		return nil, err
	}

	phone := req.Phone
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = models.DefaultReference
	}
	payload := models.STKPushPayload{
		Phone:       phone,
		Amount:      amount.IntPart(),
		Reference:   reference,
		CallbackURL: req.CallbackURL,
	}

	if err := uc.guard.CheckReachable(ctx); err != nil {
		logger.ErrorCtx(ctx, "DNS resolution failed for gateway host",
			logger.String("host", uc.guard.Host()),
			logger.Err(err))
		if uc.cfg.Lipana.EnableMock {
			return mockedOutcome(msgMockedDNS, payload, 0), nil
		}
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindGatewayUnreachable,
			Message: msgUnresolvableHost,
			Detail:  fmt.Sprintf("host=%s details=%v", uc.guard.Host(), err),
			Err:     err,
		}
	}

	tx := &models.Transaction{
		TransactionID: models.PlaceholderTransactionID(phone, amount),
		Phone:         phone,
		Amount:        amount,
		Reference:     reference,
		Status:        models.TransactionStatusPending,
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		if errors.Is(err, models.ErrDuplicateTransactionID) {
			return nil, &models.PaymentError{
				Kind:    models.ErrorKindDuplicateTransaction,
				Message: "A pending transaction for this phone and amount already exists",
				Detail:  tx.TransactionID,
				Err:     err,
			}
		}
		logger.ErrorCtx(ctx, "Failed to create transaction", logger.Err(err))
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindInternal,
			Message: "Failed to record transaction",
			Err:     err,
		}
	}
	logger.InfoCtx(ctx, "Transaction created",
		logger.Int64("id", tx.ID),
		logger.String("phone", utils.MaskMSISDN(phone)),
		logger.String("amount", amount.String()))
	uc.publish(ctx, models.EventPaymentInitiated, tx)

	resp, err := uc.gateway.PushSTK(ctx, payload)
	if err != nil {
		return uc.handleTransportError(ctx, tx, payload, err)
	}
	return uc.interpretResponse(ctx, tx, payload, resp)
}

var (
	minAmount = decimal.NewFromInt(1)
	maxAmount = decimal.New(1, 10)
)

// validateInitiation checks presence, phone format and amount, in that order
func validateInitiation(req models.STKPushRequest) (decimal.Decimal, error) {
	if req.Phone == "" || utils.IsBlank(req.Amount) {
		return decimal.Zero, models.NewPaymentError(models.ErrorKindInvalidRequest, "phone and amount are required")
	}
	if !utils.ValidateMSISDN(req.Phone) {
		return decimal.Zero, models.NewPaymentError(models.ErrorKindInvalidRequest, "Invalid phone format. Use 254xxxxxxxxx")
	}
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		return decimal.Zero, &models.PaymentError{
			Kind:    models.ErrorKindInvalidRequest,
			Message: "Amount must be a number",
			Err:     err,
		}
	}
	if !amount.IsPositive() {
		return decimal.Zero, models.NewPaymentError(models.ErrorKindInvalidRequest, "Amount must be greater than 0")
	}
	// the provider takes whole units, and the amount column is NUMERIC(12,2)
	if amount.LessThan(minAmount) {
		return decimal.Zero, models.NewPaymentError(models.ErrorKindInvalidRequest, "Amount must be at least 1")
	}
	if amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, models.NewPaymentError(models.ErrorKindInvalidRequest, "Amount must be less than 10000000000")
	}
	return amount, nil
}

func (uc *paymentUC) interpretResponse(
	ctx context.Context,
	tx *models.Transaction,
	payload models.STKPushPayload,
	resp *models.GatewayResponse,
) (*models.InitiateOutcome, error) {
	if !resp.IsJSON() {
		logger.ErrorCtx(ctx, "Lipana API returned non-JSON response",
			logger.Int("status", resp.StatusCode),
			logger.String("body", utils.Truncate(string(resp.Body), 200)))
		if uc.cfg.Lipana.EnableMock {
			return mockedOutcome(msgMockedInvalidReply, payload, tx.ID), nil
		}
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindUpstreamInvalidResponse,
			Message: "Lipana API returned invalid response",
			Detail:  fmt.Sprintf("status=%d body=%s", resp.StatusCode, utils.Truncate(string(resp.Body), 100)),
		}
	}

	logger.InfoCtx(ctx, "Lipana API response", logger.Int("status", resp.StatusCode))

	if !resp.IsSuccess() {
		return &models.InitiateOutcome{
			Kind:          models.OutcomeUpstreamError,
			Message:       "Upstream error",
			StatusCode:    resp.StatusCode,
			Detail:        resp.ErrorDetail(),
			TransactionID: tx.ID,
		}, nil
	}

	if providerID := resp.ProviderTransactionID(); providerID != "" {
		description := resp.ProviderMessage()
		if description == "" {
			description = msgSTKPushSent
		}
		err := uc.repo.AttachProviderReference(ctx, tx.ID, providerID, resp.CheckoutRequestID(), description)
		if err != nil {
			// the push went out; the webhook can still reconcile by provider id
			logger.ErrorCtx(ctx, "Failed to attach provider transaction id",
				logger.Int64("id", tx.ID),
				logger.String("transaction_id", providerID),
				logger.Err(err))
		}
	}

	return &models.InitiateOutcome{
		Kind:          models.OutcomeForwarded,
		Message:       msgSTKPushSent,
		Data:          resp.ForwardedData(),
		StatusCode:    http.StatusOK,
		TransactionID: tx.ID,
	}, nil
}

func (uc *paymentUC) handleTransportError(
	ctx context.Context,
	tx *models.Transaction,
	payload models.STKPushPayload,
	err error,
) (*models.InitiateOutcome, error) {
	localID := map[string]interface{}{"transaction_id": tx.ID}

	switch {
	case errors.Is(err, models.ErrGatewayTimeout):
		logger.ErrorCtx(ctx, "Lipana API timeout", logger.Int64("id", tx.ID))
		uc.settle(ctx, tx, models.TransactionStatusTimeout, timeoutDescription)
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindRequestTimeout,
			Message: "Request timeout. Try again.",
			Data:    localID,
			Err:     err,
		}

	case errors.Is(err, models.ErrNameResolution):
		logger.ErrorCtx(ctx, "Connection error resolving gateway host", logger.Err(err))
		if uc.cfg.Lipana.EnableMock {
			return mockedOutcome(msgMockedConnectionName, payload, tx.ID), nil
		}
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindGatewayUnreachable,
			Message: msgUnresolvableHost,
			Detail:  fmt.Sprintf("host=%s details=%v", uc.guard.Host(), err),
			Err:     err,
		}

	case errors.Is(err, models.ErrGatewayNetwork):
		logger.ErrorCtx(ctx, "Connection error", logger.Err(err))
		uc.settle(ctx, tx, models.TransactionStatusFailed, "Network error: "+utils.Truncate(err.Error(), 100))
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindNetworkError,
			Message: "Network error. Check your internet connection and Lipana API availability.",
			Detail:  err.Error(),
			Data:    localID,
			Err:     err,
		}

	default:
		logger.ErrorCtx(ctx, "Request error", logger.Err(err))
		uc.settle(ctx, tx, models.TransactionStatusFailed, "Request failed: "+utils.Truncate(err.Error(), 100))
		return nil, &models.PaymentError{
			Kind:    models.ErrorKindUpstreamRequestFailed,
			Message: "Upstream request failed",
			Detail:  err.Error(),
			Data:    localID,
			Err:     err,
		}
	}
}

// settle moves a pending transaction to a terminal status. A webhook that
// settled it first keeps its status.
func (uc *paymentUC) settle(ctx context.Context, tx *models.Transaction, to models.TransactionStatus, description string) {
	changed, err := uc.repo.TransitionStatus(ctx, tx.ID, to, description)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to update transaction status",
			logger.Int64("id", tx.ID),
			logger.String("status", string(to)),
			logger.Err(err))
		return
	}
	if !changed {
		logger.InfoCtx(ctx, "Transaction already settled, keeping stored status",
			logger.Int64("id", tx.ID),
			logger.String("attempted", string(to)))
		return
	}
	tx.Status = to
	tx.ResultDescription = description
	uc.publish(ctx, models.EventPaymentStatusChanged, tx)
}

func mockedOutcome(message string, payload models.STKPushPayload, transactionID int64) *models.InitiateOutcome {
	logger.Info("Returning mocked STK response", logger.String("reason", message))
	return &models.InitiateOutcome{
		Kind:          models.OutcomeMocked,
		Message:       message,
		Data:          models.MockedPushData(payload.Phone, payload.Amount, payload.Reference),
		StatusCode:    http.StatusOK,
		TransactionID: transactionID,
	}
}

func initiationLabel(outcome *models.InitiateOutcome, err error) string {
	if err != nil {
		var paymentErr *models.PaymentError
		if errors.As(err, &paymentErr) {
			return string(paymentErr.Kind)
		}
		return string(models.ErrorKindInternal)
	}
	return string(outcome.Kind)
}
