package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/fhir_dto"
)

type QuestionnaireResponseFhirClient interface {
	// FindQuestionnaireResponses searches by subject reference and the
	// "Questionnaire/<id>" reference, newest first.
	FindQuestionnaireResponses(ctx context.Context, subject, questionnaireID string) ([]fhir_dto.QuestionnaireResponse, error)
	CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error)
	UpdateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error)
}
