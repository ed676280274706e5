package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/delivery/http/middlewares"
	"questionnaire-service/internal/app/delivery/http/routers"
	"questionnaire-service/internal/app/drivers/database"
	"questionnaire-service/internal/app/drivers/logger"
	"questionnaire-service/internal/app/drivers/messaging"
	"questionnaire-service/internal/app/services/core/questionnaire_wizard"
	"questionnaire-service/internal/app/services/core/valuesets"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/app/services/fhir_spark/questionnaire_responses"
	"questionnaire-service/internal/app/services/fhir_spark/questionnaires"
	fhirValueSets "questionnaire-service/internal/app/services/fhir_spark/valuesets"
	"questionnaire-service/internal/app/services/shared/events"
	"questionnaire-service/internal/app/services/shared/locker"
	"questionnaire-service/internal/app/services/shared/metrics"
	"questionnaire-service/internal/app/services/shared/redis"
	"questionnaire-service/internal/app/services/shared/session"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:    ":" + internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	metrics.Register()

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionRepository := session.NewSessionRepository(redisRepository, internalConfig.Questionnaire.SessionTTL, bootstrap.Logger)
	eventPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.RabbitMQ.QuestionnaireResponseQueue, bootstrap.Logger)
	if err != nil {
		return err
	}

	// FHIR
	httpClient := fhirhttp.NewHTTPClient(
		fhirhttp.StaticToken(internalConfig.FHIR.AccessToken),
		time.Duration(internalConfig.App.RequestTimeoutInSeconds)*time.Second,
	)
	requester := fhirhttp.NewRequester(httpClient, bootstrap.Logger)
	questionnaireFhirClient := questionnaires.NewQuestionnaireFhirClient(internalConfig.FHIR.BaseUrl, requester, bootstrap.Logger)
	questionnaireResponseFhirClient := questionnaire_responses.NewQuestionnaireResponseFhirClient(internalConfig.FHIR.BaseUrl, requester, bootstrap.Logger)
	valueSetFhirClient := fhirValueSets.NewValueSetFhirClient(internalConfig.FHIR.BaseUrl, requester, bootstrap.Logger)

	// Questionnaire wizard
	questionnaireWizardUsecase := questionnaire_wizard.NewQuestionnaireWizardUsecase(
		questionnaireFhirClient,
		questionnaireResponseFhirClient,
		sessionRepository,
		lockService,
		eventPublisher,
		internalConfig,
		bootstrap.Logger,
	)
	questionnaireWizardController := questionnaire_wizard.NewQuestionnaireWizardController(bootstrap.Logger, questionnaireWizardUsecase, internalConfig)

	// Value sets
	valueSetUsecase := valuesets.NewValueSetUsecase(valueSetFhirClient, bootstrap.Logger)
	valueSetController := valuesets.NewValueSetController(bootstrap.Logger, valueSetUsecase, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		middlewares.NewMiddlewares(bootstrap.Logger, internalConfig),
		questionnaireWizardController,
		valueSetController,
	)
	return nil
}
