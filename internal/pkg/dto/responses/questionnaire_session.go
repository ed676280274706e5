package responses

import (
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/questionnaire"
)

type QuestionnaireSession struct {
	QuestionnaireID         string                   `json:"questionnaire_id"`
	QuestionnaireTitle      string                   `json:"questionnaire_title,omitempty"`
	QuestionnaireResponseID string                   `json:"questionnaire_response_id,omitempty"`
	Navigation              questionnaire.GroupInfo  `json:"navigation"`
	Counter                 string                   `json:"counter,omitempty"`
	GroupLinkID             string                   `json:"group_link_id,omitempty"`
	GroupTitle              string                   `json:"group_title,omitempty"`
	Values                  questionnaire.FormValues `json:"values"`
	Fields                  []questionnaire.Field    `json:"fields"`
}

type ValueSetOption struct {
	Coding fhir_dto.Coding `json:"coding"`
	Label  string          `json:"label"`
}
