package questionnaire_wizard

import (
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/questionnaire"
)

// buildSession renders the active group. A questionnaire that is not made of
// groups only is rendered as a single page.
func buildSession(q *fhir_dto.Questionnaire, response *fhir_dto.QuestionnaireResponse, info questionnaire.GroupInfo) *responses.QuestionnaireSession {
	session := &responses.QuestionnaireSession{
		QuestionnaireID:    q.ID,
		QuestionnaireTitle: q.Title,
		Navigation:         info,
	}
	if response != nil {
		session.QuestionnaireResponseID = response.ID
	}

	var responseItems []fhir_dto.QuestionnaireResponseItem
	if response != nil {
		responseItems = response.Item
	}

	page := &fhir_dto.QuestionnaireItem{Item: q.Item}
	pageResponse := &fhir_dto.QuestionnaireResponseItem{Item: responseItems}
	if info.Enabled {
		page = info.CurrentGroup
		session.GroupLinkID = page.LinkID
		session.GroupTitle = page.Text
		session.Counter = questionnaire.Counter(info.GroupIndex+1, info.GroupsCount)

		pageResponse = questionnaire.FindResponseItem(responseItems, page.LinkID)
		if pageResponse == nil {
			pageResponse = &fhir_dto.QuestionnaireResponseItem{LinkID: page.LinkID}
		}
	}

	form := questionnaire.NewForm(questionnaire.BuildInitialValues(page.Item, pageResponse.Item))
	session.Fields = questionnaire.Render(form, page, pageResponse, "")
	session.Values = form.Values()
	return session
}
