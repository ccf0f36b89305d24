// Package rabbitmq backs the sidecar Publisher and Subscriber contracts
// with a RabbitMQ topic exchange. Each pubsub name maps to one exchange;
// each (topic, consumer app) pair gets its own durable queue, so every
// subscribing service receives its own copy of an event. Deliveries are
// manually acked; a handler error nacks with requeue, which gives the
// at-least-once semantics the engines are written for.
package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"

	"reddog/internal/pkg/config"
	"reddog/internal/pkg/errs"
	"reddog/internal/sidecar"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Bus struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	appID    string
	logger   *slog.Logger
}

// New connects and declares the topic exchange for the given pubsub name.
// appID names the consuming service and scopes its subscription queues.
func New(cfg config.AMQPConfig, pubsubName, appID string, logger *slog.Logger) (*Bus, error) {
	conn, err := amqp.Dial(cfg.URL())
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to rabbitmq")
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	err = channel.ExchangeDeclare(
		pubsubName, // exchange
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}

	return &Bus{
		conn:     conn,
		channel:  channel,
		exchange: pubsubName,
		appID:    appID,
		logger:   logger,
	}, nil
}

func (b *Bus) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event payload")
	}

	err = b.channel.PublishWithContext(ctx,
		b.exchange,
		topic, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish event")
	}

	b.logger.Debug("published event", "exchange", b.exchange, "topic", topic)
	return nil
}

// Subscribe binds a queue for this app to the topic and consumes until ctx
// is cancelled. It returns after the consumer goroutine is running.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler sidecar.Handler) error {
	queueName := b.exchange + "." + topic + "." + b.appID

	queue, err := b.channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return errs.Wrap(err, "failed to declare queue")
	}

	if err := b.channel.QueueBind(queue.Name, topic, b.exchange, false, nil); err != nil {
		return errs.Wrap(err, "failed to bind queue")
	}

	deliveries, err := b.channel.Consume(
		queue.Name,
		queue.Name, // consumer tag, unique per subscription
		false,   // manual ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,
	)
	if err != nil {
		return errs.Wrap(err, "failed to start consumer")
	}

	go b.consume(ctx, topic, deliveries, handler)

	b.logger.Info("subscribed to topic", "topic", topic, "queue", queue.Name)
	return nil
}

func (b *Bus) consume(ctx context.Context, topic string, deliveries <-chan amqp.Delivery, handler sidecar.Handler) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-deliveries:
			if !ok {
				return
			}

			if err := handler(ctx, msg.Body); err != nil {
				b.logger.Error("event handler failed, requeueing", "topic", topic, "error", err)
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

func (b *Bus) Close() {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		b.conn.Close()
	}
}
