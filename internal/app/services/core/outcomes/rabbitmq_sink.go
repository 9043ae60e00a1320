package outcomes

import (
	"context"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/models"
	"outcomes-service/internal/pkg/constvars"
)

type rabbitMQSink struct {
	queue     contracts.MessageQueue
	queueName string
}

func NewRabbitMQSink(queue contracts.MessageQueue, queueName string) contracts.OutcomeSink {
	return &rabbitMQSink{queue: queue, queueName: queueName}
}

func (s *rabbitMQSink) Name() string {
	return constvars.SinkRabbitMQ
}

func (s *rabbitMQSink) Write(ctx context.Context, record *models.OutcomeRecord) error {
	return s.queue.Enqueue(ctx, s.queueName, record)
}
