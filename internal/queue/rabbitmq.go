package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQBroker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	url        string
	maxRetries int
	retryDelay time.Duration
	redeliver  func(ctx context.Context, queueName string, msg amqp.Delivery, headers amqp.Table) error
	mu         sync.RWMutex
}

type Config struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

func NewRabbitMQBroker(cfg Config) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// set QoS
	if err := channel.Qos(cfg.PrefetchCount, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}

	broker := &RabbitMQBroker{
		conn:       conn,
		channel:    channel,
		url:        cfg.URL,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}
	broker.redeliver = broker.republish

	for _, queueName := range Queues {
		for _, name := range []string{queueName, DLQ(queueName)} {
			if err := broker.declareQueue(name); err != nil {
				broker.Close()
				return nil, err
			}
		}
	}

	return broker, nil
}

func (b *RabbitMQBroker) declareQueue(queueName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, err := b.channel.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queueName, err)
	}

	return nil
}

func (b *RabbitMQBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	err := b.channel.PublishWithContext(
		ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         message,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (b *RabbitMQBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	msgs, err := b.channel.Consume(
		queueName, // queue
		"",        // consumer
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				b.handleMessage(ctx, msg, handler, queueName)
			}
		}
	}()

	return nil
}

func (b *RabbitMQBroker) handleMessage(ctx context.Context, msg amqp.Delivery, handler MessageHandler, queueName string) {
	err := handler(ctx, msg.Body)
	if err == nil {
		msg.Ack(false)
		return
	}

	retryCount := RetryCount(msg.Headers)

	target := DLQ(queueName)
	headers := amqp.Table{
		"x-original-queue": queueName,
		"x-retry-count":    int32(retryCount),
		"x-error":          err.Error(),
	}

	if retryCount < b.maxRetries {
		// exponential backoff: retryDelay, 2*retryDelay, 4*retryDelay...
		select {
		case <-ctx.Done():
			msg.Nack(false, true)
			return
		case <-time.After(Backoff(b.retryDelay, retryCount)):
		}

		target = queueName
		headers = amqp.Table{"x-retry-count": int32(retryCount + 1)}
	}

	// the delivery is the only copy until the redelivery is published
	if err := b.redeliver(ctx, target, msg, headers); err != nil {
		msg.Nack(false, true)
		return
	}

	msg.Ack(false)
}

func (b *RabbitMQBroker) republish(ctx context.Context, queueName string, msg amqp.Delivery, headers amqp.Table) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.channel.PublishWithContext(
		ctx,
		"",
		queueName,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  msg.ContentType,
			Body:         msg.Body,
			Headers:      headers,
			Timestamp:    time.Now(),
		},
	)
}

// RetryCount reads x-retry-count, tolerating the integer widths different
// publishers use.
func RetryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}

	switch v := headers["x-retry-count"].(type) {
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	}

	return 0
}

func Backoff(base time.Duration, retryCount int) time.Duration {
	return base << retryCount
}

func (b *RabbitMQBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}

func (b *RabbitMQBroker) Healthy() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.conn != nil && !b.conn.IsClosed()
}
