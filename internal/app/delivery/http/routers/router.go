package routers

import (
	"fmt"
	"net/http"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/delivery/http/middlewares"
	"questionnaire-service/internal/app/services/core/questionnaire_wizard"
	"questionnaire-service/internal/app/services/core/valuesets"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionnaireWizardController *questionnaire_wizard.QuestionnaireWizardController,
	valueSetController *valuesets.ValueSetController,
) {
	corsOptions := cors.Options{
		AllowedOrigins: internalConfig.App.AllowedOrigins,
		AllowedMethods: []string{
			constvars.MethodGet,
			constvars.MethodPost,
			constvars.MethodPut,
			constvars.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			constvars.HeaderAuthorization,
			constvars.HeaderContentType,
			constvars.HeaderRequestID,
			"Accept",
		},
		ExposedHeaders:   []string{constvars.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseHealthy, nil)
	})
	router.Handle("/metrics", promhttp.Handler())

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/questionnaires", func(r chi.Router) {
				attachQuestionnaireWizardRoutes(r, middlewares, questionnaireWizardController)
			})
			r.Route("/valuesets", func(r chi.Router) {
				attachValueSetRoutes(r, middlewares, valueSetController)
			})
		})
	})
}
