package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Bootstrap holds everything main wires together. Drivers for sinks that are
// not enabled stay nil.
type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	MongoDB        *mongo.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// JanitorStop if set will be called during Shutdown to stop idle run eviction
	JanitorStop func()
	// DispatcherClose waits for records that are still being delivered
	DispatcherClose func(ctx context.Context) error
	QueueClose      func() error
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.JanitorStop != nil {
		b.JanitorStop()
		log.Println("Successfully stopped assessment janitor")
	}

	if b.DispatcherClose != nil {
		if err := b.DispatcherClose(ctx); err != nil {
			log.Printf("Outcome dispatcher did not drain in time: %v", err)
		} else {
			log.Println("Successfully drained outcome dispatcher")
		}
	}

	if b.QueueClose != nil {
		if err := b.QueueClose(); err != nil {
			return err
		}
		log.Println("Successfully closing outcome queue channel")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.MongoDB != nil {
		if err := b.MongoDB.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	// stdout cannot be synced on most platforms; the error is not worth failing over
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
