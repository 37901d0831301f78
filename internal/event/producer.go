// Package event publishes storefront domain events to Kafka. Services depend
// on the Publisher interface so tests can swap in a mock.
package event

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/kafka"
	"github.com/utafrali/storefront/pkg/logger"
)

// Kafka topics.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
	TopicOrderPlaced = "storefront.order.placed"
)

// Event types carried in the envelope.
const (
	TypeCartUpdated = "cart.updated"
	TypeCartCleared = "cart.cleared"
	TypeOrderPlaced = "order.placed"
)

const source = "storefront-api"

// CartUpdatedPayload is emitted every time a cart mutation is persisted.
type CartUpdatedPayload struct {
	CartID     string `json:"cart_id"`
	OwnerID    string `json:"owner_id"`
	TotalItems int    `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

// CartClearedPayload is emitted when a cart is emptied or deleted.
type CartClearedPayload struct {
	CartID  string `json:"cart_id"`
	OwnerID string `json:"owner_id"`
}

// OrderPlacedPayload is emitted after a successful checkout.
type OrderPlacedPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id"`
	TotalItems  int    `json:"total_items"`
	Total       int64  `json:"total"`
	Currency    string `json:"currency"`
}

// Publisher is the event emission contract consumed by the service layer.
type Publisher interface {
	CartUpdated(ctx context.Context, cart *domain.Cart)
	CartCleared(ctx context.Context, cart *domain.Cart)
	OrderPlaced(ctx context.Context, order *domain.Order)
}

// Producer publishes events through a Kafka producer. Publish failures are
// logged and swallowed: events are best-effort and must never fail the
// request that triggered them.
type Producer struct {
	producer *kafka.Producer
	logger   *slog.Logger
}

func NewProducer(producer *kafka.Producer, log *slog.Logger) *Producer {
	return &Producer{producer: producer, logger: log}
}

func (p *Producer) CartUpdated(ctx context.Context, cart *domain.Cart) {
	p.publish(ctx, TopicCartUpdated, TypeCartUpdated, cart.ID, "cart", CartUpdatedPayload{
		CartID:     cart.ID,
		OwnerID:    cart.OwnerID,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	})
}

func (p *Producer) CartCleared(ctx context.Context, cart *domain.Cart) {
	p.publish(ctx, TopicCartCleared, TypeCartCleared, cart.ID, "cart", CartClearedPayload{
		CartID:  cart.ID,
		OwnerID: cart.OwnerID,
	})
}

func (p *Producer) OrderPlaced(ctx context.Context, order *domain.Order) {
	p.publish(ctx, TopicOrderPlaced, TypeOrderPlaced, order.ID, "order", OrderPlacedPayload{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		TotalItems:  len(order.Items),
		Total:       order.Total,
		Currency:    order.Currency,
	})
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, payload any) {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, payload)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
		return
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		evt.WithCorrelationID(cid)
	}
	if err := p.producer.Publish(ctx, topic, evt); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", topic),
			slog.String("event_type", eventType),
			slog.String("error", err.Error()),
		)
	}
}

// NoopPublisher discards all events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) CartUpdated(context.Context, *domain.Cart)  {}
func (NoopPublisher) CartCleared(context.Context, *domain.Cart)  {}
func (NoopPublisher) OrderPlaced(context.Context, *domain.Order) {}
