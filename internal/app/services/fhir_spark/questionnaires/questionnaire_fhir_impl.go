package questionnaires

import (
	"context"
	"fmt"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type questionnaireFhirClient struct {
	BaseUrl   string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

func NewQuestionnaireFhirClient(baseUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.QuestionnaireFhirClient {
	return &questionnaireFhirClient{
		BaseUrl:   baseUrl,
		Requester: requester,
		Log:       logger,
	}
}

// FindQuestionnaireByURL returns the first questionnaire with the canonical url.
func (c *questionnaireFhirClient) FindQuestionnaireByURL(ctx context.Context, questionnaireUrl string) (*fhir_dto.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireFhirClient.FindQuestionnaireByURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireURLKey, questionnaireUrl),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamURL, questionnaireUrl)
	questionnaires, err := c.search(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(questionnaires) == 0 {
		c.Log.Info("questionnaireFhirClient.FindQuestionnaireByURL no match",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQuestionnaireURLKey, questionnaireUrl),
		)
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("empty searchset"), questionnaireUrl)
	}

	c.Log.Info("questionnaireFhirClient.FindQuestionnaireByURL succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, questionnaires[0].ID),
	)
	return &questionnaires[0], nil
}

func (c *questionnaireFhirClient) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireFhirClient.FindQuestionnaireByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, questionnaireID),
	)

	questionnaire := new(fhir_dto.Questionnaire)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodGet,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, constvars.ResourceQuestionnaire, questionnaireID),
		Resource: constvars.ResourceQuestionnaire,
		Result:   questionnaire,
		Wrap:     exceptions.ErrGetFHIRResource,
	})
	if err != nil {
		return nil, err
	}
	return questionnaire, nil
}

// FindQuestionnairesByName accepts a comma separated list of names.
func (c *questionnaireFhirClient) FindQuestionnairesByName(ctx context.Context, name string) ([]fhir_dto.Questionnaire, error) {
	params := url.Values{}
	params.Set(constvars.FhirSearchParamName, name)
	return c.search(ctx, params)
}

func (c *questionnaireFhirClient) search(ctx context.Context, params url.Values) ([]fhir_dto.Questionnaire, error) {
	bundle := new(fhir_dto.FHIRBundle)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodGet,
		Url:      fhirhttp.SearchUrl(c.BaseUrl, constvars.ResourceQuestionnaire, params),
		Resource: constvars.ResourceQuestionnaire,
		Result:   bundle,
		Wrap:     exceptions.ErrGetFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	questionnaires, err := fhirhttp.DecodeEntries[fhir_dto.Questionnaire](bundle)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaire)
	}
	return questionnaires, nil
}
