package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"food-ordering-backend/internal/model"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publisherChannel : часть *amqp.Channel, которая нужна для публикации
type publisherChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQPublisher : события заказов в durable очередь
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel publisherChannel
	queue   string
}

func New(urlForConn string, queueName string) (*RabbitMQPublisher, error) {
	const op = "rabbitmq.New"

	conn, err := amqp.Dial(urlForConn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q, err := ch.QueueDeclare(
		queueName, true, false, false, false, nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RabbitMQPublisher{
		conn:    conn,
		channel: ch,
		queue:   q.Name,
	}, nil
}

func (r *RabbitMQPublisher) Publish(ctx context.Context, event model.OrderEvent) error {
	const op = "rabbitmq.Publish"

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		"",
		r.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         event.Type,
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RabbitMQPublisher) Close() {
	_ = r.channel.Close()
	if r.conn != nil {
		_ = r.conn.Close()
	}
}

// NopPublisher : используется, когда брокер не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.OrderEvent) error { return nil }
func (NopPublisher) Close()                                          {}
