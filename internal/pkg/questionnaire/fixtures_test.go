package questionnaire

import (
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func itemControlExtension(code string) fhir_dto.Extension {
	return fhir_dto.Extension{
		Url: constvars.ExtensionItemControl,
		ValueCodeableConcept: &fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{{Code: code}},
		},
	}
}

// twoGroupQuestionnaire has a required string "q1" in the first group and an
// optional string "q2" in the second.
func twoGroupQuestionnaire() *fhir_dto.Questionnaire {
	return &fhir_dto.Questionnaire{
		ResourceType: constvars.ResourceQuestionnaire,
		ID:           "intake",
		Url:          "https://example.org/Questionnaire/intake",
		Item: []fhir_dto.QuestionnaireItem{
			{
				LinkID: "g1",
				Type:   constvars.ItemTypeGroup,
				Text:   "About you",
				Item: []fhir_dto.QuestionnaireItem{
					{LinkID: "q1", Type: constvars.ItemTypeString, Text: "Name", Required: true},
				},
			},
			{
				LinkID: "g2",
				Type:   constvars.ItemTypeGroup,
				Text:   "More",
				Item: []fhir_dto.QuestionnaireItem{
					{LinkID: "q2", Type: constvars.ItemTypeString, Text: "Notes"},
				},
			},
		},
	}
}
