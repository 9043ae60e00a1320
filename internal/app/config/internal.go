package config

import (
	"fmt"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"slices"
	"time"
)

type InternalConfig struct {
	App         App
	Assessment  AppAssessment
	Persistence AppPersistence
	Webhook     AppWebhook
	RabbitMQ    AppRabbitMQ
	MongoDB     AppMongoDB
	Minio       AppMinio
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Address                  string
	EndpointPrefix           string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
	// APIKeyHash is a bcrypt hash; an empty value leaves the API open.
	APIKeyHash               string
	APIKeyRateLimit          int
	AnswerRateLimit          int
	AnswerBlockTimeInSeconds int
}

type AppAssessment struct {
	IdleTimeoutInMinutes     int
	JanitorIntervalInSeconds int
}

type AppPersistence struct {
	// Sinks lists the enabled outputs: webhook, rabbitmq, mongo, minio.
	Sinks              []string
	TimeoutInSeconds   int
	RateLimitPerSecond float64
	RateLimitBurst     int
	GuardEnabled       bool
	GuardTTLInHours    int
}

// AppWebhook configures the spreadsheet collector endpoint.
type AppWebhook struct {
	URL                  string
	HTTPTimeoutInSeconds int
	JWTSecret            string
	JWTTTLInMinutes      int
}

type AppRabbitMQ struct {
	OutcomeQueue string
}

type AppMongoDB struct {
	DbName            string
	OutcomeCollection string
}

type AppMinio struct {
	BucketName string
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == constvars.AppEnvironmentProduction
}

func (c *InternalConfig) SinkEnabled(name string) bool {
	return slices.Contains(c.Persistence.Sinks, name)
}

func (c *InternalConfig) PersistenceEnabled() bool {
	return len(c.Persistence.Sinks) > 0
}

func (c *InternalConfig) IdleTimeout() time.Duration {
	return time.Duration(c.Assessment.IdleTimeoutInMinutes) * time.Minute
}

func (c *InternalConfig) JanitorInterval() time.Duration {
	return time.Duration(c.Assessment.JanitorIntervalInSeconds) * time.Second
}

func (c *InternalConfig) PersistenceTimeout() time.Duration {
	return time.Duration(c.Persistence.TimeoutInSeconds) * time.Second
}

// Validate rejects unknown sink names and sinks enabled without the settings
// they need.
func (c *InternalConfig) Validate() error {
	for _, sink := range c.Persistence.Sinks {
		if err := utils.ValidateVar(sink, "sink_name"); err != nil {
			return exceptions.ErrUnknownSink(err, sink)
		}
	}
	if c.SinkEnabled(constvars.SinkWebhook) && c.Webhook.URL == "" {
		return exceptions.ErrSinkNotConfigured(fmt.Errorf("PERSISTENCE_WEBHOOK_URL is empty"), constvars.SinkWebhook)
	}
	if c.SinkEnabled(constvars.SinkRabbitMQ) && c.RabbitMQ.OutcomeQueue == "" {
		return exceptions.ErrSinkNotConfigured(fmt.Errorf("APP_RABBITMQ_OUTCOME_QUEUE is empty"), constvars.SinkRabbitMQ)
	}
	if c.SinkEnabled(constvars.SinkMongo) && c.MongoDB.OutcomeCollection == "" {
		return exceptions.ErrSinkNotConfigured(fmt.Errorf("MONGODB_OUTCOME_COLLECTION is empty"), constvars.SinkMongo)
	}
	if c.SinkEnabled(constvars.SinkMinio) && c.Minio.BucketName == "" {
		return exceptions.ErrSinkNotConfigured(fmt.Errorf("MINIO_BUCKET_NAME is empty"), constvars.SinkMinio)
	}
	return nil
}
