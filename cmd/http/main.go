package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/app/contracts"
	"outcomes-service/internal/app/delivery/http/controllers"
	"outcomes-service/internal/app/delivery/http/middlewares"
	"outcomes-service/internal/app/delivery/http/routers"
	"outcomes-service/internal/app/drivers/database"
	"outcomes-service/internal/app/drivers/logger"
	"outcomes-service/internal/app/drivers/messaging"
	"outcomes-service/internal/app/drivers/storage"
	"outcomes-service/internal/app/services/core/assessments"
	"outcomes-service/internal/app/services/core/instruments"
	"outcomes-service/internal/app/services/core/outcomes"
	"outcomes-service/internal/app/services/shared/jwtmanager"
	"outcomes-service/internal/app/services/shared/locker"
	"outcomes-service/internal/app/services/shared/outcomequeue"
	"outcomes-service/internal/app/services/shared/redis"
	sharedStorage "outcomes-service/internal/app/services/shared/storage"
	"outcomes-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	err := internalConfig.Validate()
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	connectDrivers(bootstrap)

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

// connectDrivers only dials the backends the enabled sinks need. Redis backs
// the emission guard and is skipped when nothing is emitted.
func connectDrivers(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	driverConfig := bootstrap.DriverConfig

	if internalConfig.PersistenceEnabled() && internalConfig.Persistence.GuardEnabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.SinkEnabled(constvars.SinkMongo) {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if internalConfig.SinkEnabled(constvars.SinkRabbitMQ) {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Outcome sinks
	sinks, err := buildSinks(bootstrap)
	if err != nil {
		return err
	}

	var publisher contracts.OutcomePublisher
	if len(sinks) > 0 {
		var guard contracts.EmissionGuard
		if bootstrap.Redis != nil {
			guard = locker.NewEmissionGuard(redis.NewRedisRepository(bootstrap.Redis), log)
		}
		dispatcher := outcomes.NewDispatcher(outcomes.DispatcherConfig{
			Timeout:   internalConfig.PersistenceTimeout(),
			GuardTTL:  time.Duration(internalConfig.Persistence.GuardTTLInHours) * time.Hour,
			RateLimit: rate.Limit(internalConfig.Persistence.RateLimitPerSecond),
			Burst:     internalConfig.Persistence.RateLimitBurst,
		}, guard, log, sinks...)
		bootstrap.DispatcherClose = dispatcher.Close
		publisher = dispatcher
	}

	// Catalog
	catalog := instruments.DefaultCatalog()
	instrumentUsecase := instruments.NewInstrumentUsecase(catalog, log)
	instrumentController := controllers.NewInstrumentController(log, instrumentUsecase)

	// Assessments
	assessmentUsecase := assessments.NewAssessmentUsecase(catalog, publisher, log)
	assessmentController := controllers.NewAssessmentController(log, assessmentUsecase)

	janitor := assessments.NewJanitor(log, assessmentUsecase, internalConfig.IdleTimeout(), internalConfig.JanitorInterval())
	bootstrap.JanitorStop = janitor.Start(context.Background())

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, log, middlewares, instrumentController, assessmentController)
	return nil
}

func buildSinks(bootstrap *config.Bootstrap) ([]contracts.OutcomeSink, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	var sinks []contracts.OutcomeSink

	if internalConfig.SinkEnabled(constvars.SinkWebhook) {
		var tokens contracts.TokenIssuer
		if internalConfig.Webhook.JWTSecret != "" {
			jwtManager, err := jwtmanager.NewJWTManager(internalConfig, log)
			if err != nil {
				return nil, err
			}
			tokens = jwtManager
		}
		sinks = append(sinks, outcomes.NewWebhookSink(internalConfig, tokens, log))
	}

	if internalConfig.SinkEnabled(constvars.SinkRabbitMQ) {
		queue, err := outcomequeue.NewService(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.OutcomeQueue)
		if err != nil {
			return nil, err
		}
		bootstrap.QueueClose = queue.Close
		sinks = append(sinks, outcomes.NewRabbitMQSink(queue, internalConfig.RabbitMQ.OutcomeQueue))
	}

	if internalConfig.SinkEnabled(constvars.SinkMongo) {
		repository := outcomes.NewOutcomeRecordMongoRepository(
			bootstrap.MongoDB,
			internalConfig.MongoDB.DbName,
			internalConfig.MongoDB.OutcomeCollection,
		)
		sinks = append(sinks, outcomes.NewMongoSink(repository))
	}

	if internalConfig.SinkEnabled(constvars.SinkMinio) {
		minioClient := storage.NewMinio(bootstrap.DriverConfig, internalConfig.Minio.BucketName)
		sinks = append(sinks, outcomes.NewMinioSink(sharedStorage.NewMinioStorage(minioClient), internalConfig.Minio.BucketName))
	}

	log.Info("Outcome sinks configured",
		zap.Strings("sinks", internalConfig.Persistence.Sinks),
		zap.Int(constvars.LoggingSinkCountKey, len(sinks)),
	)
	return sinks, nil
}
