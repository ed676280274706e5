package routers

import (
	"questionnaire-service/internal/app/delivery/http/middlewares"
	"questionnaire-service/internal/app/services/core/questionnaire_wizard"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireWizardRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireWizardController *questionnaire_wizard.QuestionnaireWizardController) {
	router.With(middlewares.Authenticate).Post("/sessions", questionnaireWizardController.StartSession)
	router.With(middlewares.Authenticate).Post("/sessions/submit", questionnaireWizardController.SubmitGroup)
	router.With(middlewares.Authenticate).Post("/sessions/previous", questionnaireWizardController.PreviousGroup)
	router.With(middlewares.Authenticate).Delete("/sessions", questionnaireWizardController.ResetSession)
}
