package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/fhir_dto"
)

type QuestionnaireFhirClient interface {
	FindQuestionnaireByURL(ctx context.Context, url string) (*fhir_dto.Questionnaire, error)
	FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error)
	FindQuestionnairesByName(ctx context.Context, name string) ([]fhir_dto.Questionnaire, error)
}
