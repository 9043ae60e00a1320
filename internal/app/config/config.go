package config

import (
	"outcomes-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                  utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			APIKeyHash:               utils.GetEnvString("APP_API_KEY_HASH", ""),
			APIKeyRateLimit:          utils.GetEnvInt("APP_API_KEY_RATE_LIMIT", 100),
			AnswerRateLimit:          utils.GetEnvInt("APP_ANSWER_RATE_LIMIT", 5),
			AnswerBlockTimeInSeconds: utils.GetEnvInt("APP_ANSWER_BLOCK_TIME_IN_SECONDS", 30),
		},
		Assessment: AppAssessment{
			IdleTimeoutInMinutes:     utils.GetEnvInt("APP_ASSESSMENT_IDLE_TIMEOUT_IN_MINUTES", 60),
			JanitorIntervalInSeconds: utils.GetEnvInt("APP_ASSESSMENT_JANITOR_INTERVAL_IN_SECONDS", 60),
		},
		Persistence: AppPersistence{
			Sinks:              utils.GetEnvCSV("PERSISTENCE_SINKS", []string{}),
			TimeoutInSeconds:   utils.GetEnvInt("PERSISTENCE_TIMEOUT_IN_SECONDS", 10),
			RateLimitPerSecond: utils.GetEnvFloat("PERSISTENCE_RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     utils.GetEnvInt("PERSISTENCE_RATE_LIMIT_BURST", 10),
			GuardEnabled:       utils.GetEnvBool("PERSISTENCE_GUARD_ENABLED", true),
			GuardTTLInHours:    utils.GetEnvInt("PERSISTENCE_GUARD_TTL_IN_HOURS", 24),
		},
		Webhook: AppWebhook{
			URL:                  utils.GetEnvString("PERSISTENCE_WEBHOOK_URL", ""),
			HTTPTimeoutInSeconds: utils.GetEnvInt("PERSISTENCE_WEBHOOK_HTTP_TIMEOUT_IN_SECONDS", 5),
			JWTSecret:            utils.GetEnvString("PERSISTENCE_WEBHOOK_JWT_SECRET", ""),
			JWTTTLInMinutes:      utils.GetEnvInt("PERSISTENCE_WEBHOOK_JWT_TTL_IN_MINUTES", 5),
		},
		RabbitMQ: AppRabbitMQ{
			OutcomeQueue: utils.GetEnvString("APP_RABBITMQ_OUTCOME_QUEUE", "outcome_records"),
		},
		MongoDB: AppMongoDB{
			DbName:            utils.GetEnvString("MONGODB_DB_NAME", "outcomes"),
			OutcomeCollection: utils.GetEnvString("MONGODB_OUTCOME_COLLECTION", "outcome_records"),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "outcome-records"),
		},
	}
}
