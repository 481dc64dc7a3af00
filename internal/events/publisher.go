// Package events publishes record change notifications to an AMQP exchange.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"fintrack/internal/logger"
	"fintrack/internal/services"
)

const publishTimeout = 5 * time.Second

// channel is the subset of *amqp091.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends RecordChange messages to a durable topic exchange with
// routing keys of the form "record.<kind>.<action>".
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	ch       channel
	exchange string
}

// NewPublisher dials url and declares exchange.
func NewPublisher(url, exchange string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Publisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// RoutingKey returns the routing key used for change.
func RoutingKey(change services.RecordChange) string {
	return fmt.Sprintf("record.%s.%s", change.Kind, change.Action)
}

// Notify implements services.ChangeNotifier.
func (p *Publisher) Notify(ctx context.Context, change services.RecordChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal change: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(
		ctx,
		p.exchange,
		RoutingKey(change),
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    change.At,
			MessageId:    change.RecordID + ":" + string(change.Action),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish change: %w", err)
	}

	logger.Named("events").Debugw("published record change",
		"exchange", p.exchange,
		"routing_key", RoutingKey(change),
		"record_id", change.RecordID,
	)
	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
