package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
)

type QuestionnaireWizardUsecase interface {
	StartSession(ctx context.Context, request *requests.StartQuestionnaireSession) (*responses.QuestionnaireSession, error)
	SubmitGroup(ctx context.Context, request *requests.SubmitQuestionnaireGroup) (*responses.QuestionnaireSession, error)
	PreviousGroup(ctx context.Context, request *requests.PreviousQuestionnaireGroup) (*responses.QuestionnaireSession, error)
	ResetSession(ctx context.Context, request *requests.ResetQuestionnaireSession) error
}

// SessionRepository stores the navigation override of a wizard session.
type SessionRepository interface {
	FindGroupIndex(ctx context.Context, subject, questionnaireID string) (*int, error)
	SaveGroupIndex(ctx context.Context, subject, questionnaireID string, groupIndex int) error
	DeleteGroupIndex(ctx context.Context, subject, questionnaireID string) error
}
