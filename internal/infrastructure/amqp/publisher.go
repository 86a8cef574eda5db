// Package amqp publishes authentication events to a RabbitMQ queue so
// downstream consumers (fraud scoring, notifications) can react to signups
// and logins without coupling to this service.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/merqado/commerce-api/internal/core/domain"
)

// Publisher holds a connection and channel open for the process lifetime.
// Messages are persistent and the queue is durable, so events survive broker
// restarts.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

type eventMessage struct {
	Subject   string    `json:"subject"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
	RemoteIP  string    `json:"remote_ip,omitempty"`
}

// NewPublisher dials the broker and declares the target queue.
func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	return &Publisher{conn: conn, channel: ch, queue: queue}, nil
}

// Publish sends an authentication event to the queue as JSON.
func (p *Publisher) Publish(ctx context.Context, event domain.AuthEvent) error {
	body, err := json.Marshal(eventMessage{
		Subject:   event.Subject,
		Kind:      string(event.Kind),
		Timestamp: event.Timestamp,
		RemoteIP:  event.RemoteIP,
	})
	if err != nil {
		return fmt.Errorf("marshal auth event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish auth event: %w", err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}
