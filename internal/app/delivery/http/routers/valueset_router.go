package routers

import (
	"questionnaire-service/internal/app/delivery/http/middlewares"
	"questionnaire-service/internal/app/services/core/valuesets"

	"github.com/go-chi/chi/v5"
)

func attachValueSetRoutes(router chi.Router, middlewares *middlewares.Middlewares, valueSetController *valuesets.ValueSetController) {
	router.With(middlewares.Authenticate).Get("/expand", valueSetController.ExpandValueSet)
}
