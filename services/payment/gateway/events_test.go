package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/piresc/stkpush/internal/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics   []string
	messages []interface{}
	err      error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, message)
	return p.err
}

func TestNSQEventGateway_PublishTransactionEvent(t *testing.T) {
	tx := &models.Transaction{
		ID:            7,
		TransactionID: "TXN123",
		Phone:         "254700686463",
		Amount:        decimal.NewFromInt(50),
		Status:        models.TransactionStatusCompleted,
	}
	event := models.NewTransactionEvent(models.EventPaymentReconciled, tx, "trace-1")

	t.Run("publishes to topic", func(t *testing.T) {
		pub := &recordingPublisher{}
		gw := NewNSQEventGateway(pub, "payments")

		require.NoError(t, gw.PublishTransactionEvent(context.Background(), event))
		assert.Equal(t, []string{"payments"}, pub.topics)

		published, ok := pub.messages[0].(models.TransactionEvent)
		require.True(t, ok)
		assert.Equal(t, models.EventPaymentReconciled, published.Type)
		assert.Equal(t, int64(7), published.ID)
		assert.Equal(t, "trace-1", published.TraceID)
	})

	t.Run("publisher failure is returned", func(t *testing.T) {
		pub := &recordingPublisher{err: errors.New("nsqd down")}
		gw := NewNSQEventGateway(pub, "payments")

		err := gw.PublishTransactionEvent(context.Background(), event)
		assert.ErrorContains(t, err, "nsqd down")
	})

	t.Run("nil publisher is a no-op", func(t *testing.T) {
		gw := NewNSQEventGateway(nil, "payments")
		assert.NoError(t, gw.PublishTransactionEvent(context.Background(), event))
	})
}
