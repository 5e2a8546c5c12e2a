package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/models"
)

// Publisher sends a message to a topic; *nsq.Producer satisfies it
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// NSQEventGateway publishes transaction events to an NSQ topic
type NSQEventGateway struct {
	publisher Publisher
	topic     string
}

// NewNSQEventGateway creates an event gateway. A nil publisher turns every publish into a no-op.
func NewNSQEventGateway(publisher Publisher, topic string) *NSQEventGateway {
	return &NSQEventGateway{
		publisher: publisher,
		topic:     topic,
	}
}

// PublishTransactionEvent publishes event to the configured topic
func (g *NSQEventGateway) PublishTransactionEvent(ctx context.Context, event models.TransactionEvent) error {
	if g.publisher == nil {
		return nil
	}

	if err := g.publisher.Publish(g.topic, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	logger.DebugCtx(ctx, "Published transaction event",
		logger.String("type", string(event.Type)),
		logger.Int64("id", event.ID),
		logger.String("status", string(event.Status)))
	return nil
}
