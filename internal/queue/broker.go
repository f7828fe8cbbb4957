package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueStoreStatus = "store-status"
	QueueFoodImport  = "food-import"

	dlqSuffix = "-dlq"
)

// Queues lists every work queue the broker declares, DLQs excluded.
var Queues = []string{QueueStoreStatus, QueueFoodImport}

func DLQ(queueName string) string {
	return queueName + dlqSuffix
}
