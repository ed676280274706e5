package requests

import "questionnaire-service/internal/pkg/questionnaire"

type StartQuestionnaireSession struct {
	QuestionnaireURL string `json:"questionnaire_url" validate:"required"`
	Subject          string `json:"-"`
}

type SubmitQuestionnaireGroup struct {
	QuestionnaireURL string                   `json:"questionnaire_url" validate:"required"`
	GroupIndex       int                      `json:"group_index" validate:"gte=0"`
	Values           questionnaire.FormValues `json:"values"`
	Subject          string                   `json:"-"`
}

type PreviousQuestionnaireGroup struct {
	QuestionnaireURL string `json:"questionnaire_url" validate:"required"`
	GroupIndex       int    `json:"group_index" validate:"gte=0"`
	Subject          string `json:"-"`
}

type ResetQuestionnaireSession struct {
	QuestionnaireURL string `validate:"required"`
	Subject          string
}

type ExpandValueSet struct {
	Url    string `validate:"required"`
	Filter string
}
