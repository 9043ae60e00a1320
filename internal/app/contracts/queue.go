package contracts

import "context"

type MessageQueue interface {
	Enqueue(ctx context.Context, queueName string, payload interface{}) error
	Close() error
}
