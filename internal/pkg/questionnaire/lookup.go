package questionnaire

import (
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

// FindResponseItem walks the response tree depth-first and returns the first
// item carrying linkID.
func FindResponseItem(items []fhir_dto.QuestionnaireResponseItem, linkID string) *fhir_dto.QuestionnaireResponseItem {
	for i := range items {
		if items[i].LinkID == linkID {
			return &items[i]
		}
		if nested := FindResponseItem(items[i].Item, linkID); nested != nil {
			return nested
		}
	}
	return nil
}

// FindQuestionItem is the question-tree counterpart of FindResponseItem.
func FindQuestionItem(items []fhir_dto.QuestionnaireItem, linkID string) *fhir_dto.QuestionnaireItem {
	for i := range items {
		if items[i].LinkID == linkID {
			return &items[i]
		}
		if nested := FindQuestionItem(items[i].Item, linkID); nested != nil {
			return nested
		}
	}
	return nil
}

func findDirectResponseItem(items []fhir_dto.QuestionnaireResponseItem, linkID string) *fhir_dto.QuestionnaireResponseItem {
	for i := range items {
		if items[i].LinkID == linkID {
			return &items[i]
		}
	}
	return nil
}

// FlattenQuestions returns the leaf questions below items, expanding groups.
func FlattenQuestions(items []fhir_dto.QuestionnaireItem) []fhir_dto.QuestionnaireItem {
	var questions []fhir_dto.QuestionnaireItem
	for _, item := range items {
		if item.Type == constvars.ItemTypeGroup {
			questions = append(questions, FlattenQuestions(item.Item)...)
			continue
		}
		questions = append(questions, item)
	}
	return questions
}

// AnsweredLinkIDs collects every link id in the response tree holding at
// least one answer.
func AnsweredLinkIDs(items []fhir_dto.QuestionnaireResponseItem) map[string]bool {
	answered := make(map[string]bool)
	collectAnswered(items, answered)
	return answered
}

func collectAnswered(items []fhir_dto.QuestionnaireResponseItem, answered map[string]bool) {
	for _, item := range items {
		if len(item.Answer) > 0 {
			answered[item.LinkID] = true
		}
		collectAnswered(item.Item, answered)
	}
}

func ExtensionByURL(extensions []fhir_dto.Extension, url string) *fhir_dto.Extension {
	for i := range extensions {
		if extensions[i].Url == url {
			return &extensions[i]
		}
	}
	return nil
}

// ItemControl returns the first coding code of the item-control extension,
// or "" when the item carries none.
func ItemControl(item fhir_dto.QuestionnaireItem) string {
	extension := ExtensionByURL(item.Extension, constvars.ExtensionItemControl)
	if extension == nil || extension.ValueCodeableConcept == nil || len(extension.ValueCodeableConcept.Coding) == 0 {
		return ""
	}
	return extension.ValueCodeableConcept.Coding[0].Code
}

func extensionString(item fhir_dto.QuestionnaireItem, url string) string {
	extension := ExtensionByURL(item.Extension, url)
	if extension == nil {
		return ""
	}
	if extension.ValueString != "" {
		return extension.ValueString
	}
	return extension.ValueCode
}
