package questionnaire

import (
	"fmt"
	"math"
	"time"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/mitchellh/mapstructure"
)

// BuildResponse maps form values onto a QuestionnaireResponse for q. Items
// without a value keep the answers of previous, which makes saving one
// wizard group at a time non-destructive.
func BuildResponse(q *fhir_dto.Questionnaire, values FormValues, subject, source fhir_dto.Reference, previous *fhir_dto.QuestionnaireResponse) *fhir_dto.QuestionnaireResponse {
	var previousItems []fhir_dto.QuestionnaireResponseItem
	if previous != nil {
		previousItems = previous.Item
	}

	return &fhir_dto.QuestionnaireResponse{
		ResourceType:  constvars.ResourceQuestionnaireResponse,
		Questionnaire: fmt.Sprintf(constvars.FhirReferenceFormat, constvars.ResourceQuestionnaire, q.ID),
		Status:        constvars.FhirQuestionnaireResponseStatusInProgress,
		Authored:      time.Now().Format(time.RFC3339),
		Subject:       &subject,
		Author:        &source,
		Source:        &source,
		Item:          mapItems(q.Item, values, previousItems),
	}
}

func mapItems(items []fhir_dto.QuestionnaireItem, values map[string]any, previousItems []fhir_dto.QuestionnaireResponseItem) []fhir_dto.QuestionnaireResponseItem {
	result := make([]fhir_dto.QuestionnaireResponseItem, 0, len(items))

	for _, item := range items {
		responseItem := fhir_dto.QuestionnaireResponseItem{
			ID:                item.ID,
			LinkID:            item.LinkID,
			Extension:         item.Extension,
			ModifierExtension: item.ModifierExtension,
			Definition:        item.Definition,
			Text:              item.Text,
		}
		previousItem := findDirectResponseItem(previousItems, item.LinkID)

		if item.Type == constvars.ItemTypeGroup {
			nestedValues, ok := asMap(values[item.LinkID])
			if !ok {
				nestedValues = values
			}
			var previousChildren []fhir_dto.QuestionnaireResponseItem
			if previousItem != nil {
				previousChildren = previousItem.Item
			}
			responseItem.Item = mapItems(item.Item, nestedValues, previousChildren)
			result = append(result, responseItem)
			continue
		}

		value := values[item.LinkID]
		if IsFalsy(value) {
			if previousItem != nil && len(previousItem.Answer) > 0 {
				responseItem.Answer = previousItem.Answer
				result = append(result, responseItem)
			}
			continue
		}

		switch control := ItemControl(item); {
		case item.AnswerValueSet != "":
			responseItem.Answer = []fhir_dto.QuestionnaireResponseItemAnswer{valueSetAnswer(value)}
		case control != "":
			responseItem.Answer = formControlAnswers(control, value)
		default:
			responseItem.Answer = baseTypeAnswers(item.Type, value)
		}
		result = append(result, responseItem)
	}

	return result
}

func valueSetAnswer(value any) fhir_dto.QuestionnaireResponseItemAnswer {
	switch v := value.(type) {
	case fhir_dto.QuestionnaireResponseItemAnswer:
		return v
	case string:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueString: &v}
	}

	var answer fhir_dto.QuestionnaireResponseItemAnswer
	if err := mapstructure.Decode(value, &answer); err != nil {
		s := fmt.Sprint(value)
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueString: &s}
	}
	return answer
}

func formControlAnswers(control string, value any) []fhir_dto.QuestionnaireResponseItemAnswer {
	switch control {
	case constvars.ItemControlRadioButton:
		return []fhir_dto.QuestionnaireResponseItemAnswer{choiceAnswer(value)}
	case constvars.ItemControlCheckBox:
		selections := stringValues(value)
		answers := make([]fhir_dto.QuestionnaireResponseItemAnswer, 0, len(selections))
		for i := range selections {
			answers = append(answers, fhir_dto.QuestionnaireResponseItemAnswer{ValueString: &selections[i]})
		}
		return answers
	}
	return nil
}

func baseTypeAnswers(itemType string, value any) []fhir_dto.QuestionnaireResponseItemAnswer {
	switch itemType {
	case constvars.ItemTypeString:
		s := stringValue(value)
		return []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: &s}}
	case constvars.ItemTypeChoice:
		return []fhir_dto.QuestionnaireResponseItemAnswer{choiceAnswer(value)}
	case constvars.ItemTypeDate:
		s := dateValue(value)
		return []fhir_dto.QuestionnaireResponseItemAnswer{{ValueDate: &s}}
	case constvars.ItemTypeReference:
		reference := referenceValue(value)
		if reference == nil {
			return nil
		}
		return []fhir_dto.QuestionnaireResponseItemAnswer{{ValueReference: reference}}
	}
	return nil
}

// choiceAnswer keeps the type of a selected answer option. Codings and
// references arrive either as structs or as decoded JSON objects.
func choiceAnswer(value any) fhir_dto.QuestionnaireResponseItemAnswer {
	switch v := value.(type) {
	case string:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueString: &v}
	case int:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueInteger: &v}
	case float64:
		if v == math.Trunc(v) {
			n := int(v)
			return fhir_dto.QuestionnaireResponseItemAnswer{ValueInteger: &n}
		}
	case fhir_dto.Coding:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueCoding: &v}
	case *fhir_dto.Coding:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueCoding: v}
	case fhir_dto.Reference:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueReference: &v}
	case *fhir_dto.Reference:
		return fhir_dto.QuestionnaireResponseItemAnswer{ValueReference: v}
	}

	if m, ok := asMap(value); ok {
		// prefilled from a saved valueCoding answer
		if coding, ok := m[answerKindCoding]; ok {
			return choiceAnswer(coding)
		}
		if _, ok := m["reference"]; ok {
			if reference := referenceValue(m); reference != nil {
				return fhir_dto.QuestionnaireResponseItemAnswer{ValueReference: reference}
			}
		}
		var coding fhir_dto.Coding
		if err := mapstructure.Decode(m, &coding); err == nil && (coding.Code != "" || coding.System != "") {
			return fhir_dto.QuestionnaireResponseItemAnswer{ValueCoding: &coding}
		}
	}

	s := stringValue(value)
	return fhir_dto.QuestionnaireResponseItemAnswer{ValueString: &s}
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func stringValues(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		selections := make([]string, 0, len(v))
		for _, item := range v {
			selections = append(selections, stringValue(item))
		}
		return selections
	case string:
		return []string{v}
	}
	return nil
}

func dateValue(value any) string {
	if date, ok := toDate(value); ok {
		return date.Format(constvars.DateLayout)
	}
	return stringValue(value)
}

func referenceValue(value any) *fhir_dto.Reference {
	switch v := ReferenceFromResource(value).(type) {
	case fhir_dto.Reference:
		return &v
	case *fhir_dto.Reference:
		return v
	case map[string]any, FormValues:
		var reference fhir_dto.Reference
		if err := mapstructure.Decode(v, &reference); err != nil {
			return nil
		}
		return &reference
	case string:
		return &fhir_dto.Reference{Reference: v}
	}
	return nil
}
