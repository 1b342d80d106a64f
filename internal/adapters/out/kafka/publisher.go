package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	eventOrderPlaced        = "order_placed"
	eventOrderStatusChanged = "order_status_changed"

	writeTimeout = 10 * time.Second
)

// orderEvent is the wire format for order lifecycle messages. Messages
// are keyed by order ID so all events for one order land on the same
// partition and consumers see them in order.
type orderEvent struct {
	EventType   string           `json:"eventType"`
	OrderID     string           `json:"orderId"`
	UserID      string           `json:"userId"`
	Status      string           `json:"status"`
	TotalAmount float64          `json:"totalAmount"`
	OccurredAt  time.Time        `json:"occurredAt"`
	Items       []orderEventItem `json:"items"`
}

type orderEventItem struct {
	BookID   string  `json:"bookId"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderEventPublisher publishes order lifecycle events to a Kafka topic.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
	}

	return &OrderEventPublisher{writer: writer}
}

// PublishOrderPlaced announces a newly placed order.
func (p *OrderEventPublisher) PublishOrderPlaced(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderPlaced, aggregate)
}

// PublishOrderStatusChanged announces a status transition.
func (p *OrderEventPublisher) PublishOrderStatusChanged(ctx context.Context, aggregate *order.Order) error {
	return p.publish(ctx, eventOrderStatusChanged, aggregate)
}

// Close flushes buffered messages and releases the connection.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func (p *OrderEventPublisher) publish(ctx context.Context, eventType string, aggregate *order.Order) error {
	items := make([]orderEventItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderEventItem{
			BookID:   item.BookID().String(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	event := orderEvent{
		EventType:   eventType,
		OrderID:     aggregate.ID().String(),
		UserID:      aggregate.UserID().String(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		OccurredAt:  time.Now().UTC(),
		Items:       items,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}

	return nil
}

var _ ports.OrderEventPublisher = (*OrderEventPublisher)(nil)
