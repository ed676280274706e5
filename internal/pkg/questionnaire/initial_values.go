package questionnaire

import (
	"time"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

const (
	answerKindString    = "valueString"
	answerKindDate      = "valueDate"
	answerKindBoolean   = "valueBoolean"
	answerKindCoding    = "valueCoding"
	answerKindReference = "valueReference"
)

// DefaultValue is the form value an unanswered item of itemType starts with.
func DefaultValue(itemType string) any {
	switch itemType {
	case constvars.ItemTypeString:
		return ""
	case constvars.ItemTypeOpenChoice, constvars.ItemTypeGroup:
		return FormValues{}
	case constvars.ItemTypeBoolean:
		return true
	default:
		return nil
	}
}

// BuildInitialValues seeds the form for items from a previously saved
// response. Groups recurse with the matching response item's children.
func BuildInitialValues(items []fhir_dto.QuestionnaireItem, responseItems []fhir_dto.QuestionnaireResponseItem) FormValues {
	values := make(FormValues, len(items))
	for _, item := range items {
		responseItem := FindResponseItem(responseItems, item.LinkID)

		if item.Type == constvars.ItemTypeGroup && len(item.Item) > 0 {
			var children []fhir_dto.QuestionnaireResponseItem
			if responseItem != nil {
				children = responseItem.Item
			}
			values[item.LinkID] = BuildInitialValues(item.Item, children)
			continue
		}

		values[item.LinkID] = initialValue(item, responseItem)
	}
	return values
}

func initialValue(item fhir_dto.QuestionnaireItem, responseItem *fhir_dto.QuestionnaireResponseItem) any {
	if responseItem == nil || len(responseItem.Answer) == 0 {
		return DefaultValue(item.Type)
	}

	if len(responseItem.Answer) == 1 {
		return ParseAnswer(responseItem.Answer[0])
	}

	answers := make([]any, 0, len(responseItem.Answer))
	for _, answer := range responseItem.Answer {
		answers = append(answers, ParseAnswer(answer))
	}
	return answers
}

// ParseAnswer converts a stored answer into its form representation. Unknown
// answer kinds and empty raw values become "".
func ParseAnswer(answer fhir_dto.QuestionnaireResponseItemAnswer) any {
	kind, raw := answerKind(answer)
	if IsFalsy(raw) {
		return ""
	}

	switch kind {
	case answerKindString:
		return *answer.ValueString
	case answerKindDate:
		parsed, err := ParseDate(*answer.ValueDate)
		if err != nil {
			return ""
		}
		return parsed
	case answerKindBoolean:
		return *answer.ValueBoolean
	case answerKindCoding:
		return FormValues{answerKindCoding: *answer.ValueCoding}
	case answerKindReference:
		return *answer.ValueReference
	default:
		return ""
	}
}

func answerKind(answer fhir_dto.QuestionnaireResponseItemAnswer) (string, any) {
	switch {
	case answer.ValueString != nil:
		return answerKindString, *answer.ValueString
	case answer.ValueDate != nil:
		return answerKindDate, *answer.ValueDate
	case answer.ValueBoolean != nil:
		return answerKindBoolean, *answer.ValueBoolean
	case answer.ValueCoding != nil:
		return answerKindCoding, answer.ValueCoding
	case answer.ValueReference != nil:
		return answerKindReference, answer.ValueReference
	case answer.ValueInteger != nil:
		return "valueInteger", *answer.ValueInteger
	case answer.ValueDecimal != nil:
		return "valueDecimal", *answer.ValueDecimal
	case answer.ValueDateTime != nil:
		return "valueDateTime", *answer.ValueDateTime
	}
	return "", nil
}

var dateLayouts = []string{
	constvars.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate accepts a calendar date or an ISO 8601 timestamp.
func ParseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var parsed time.Time
		parsed, err = time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, err
}
