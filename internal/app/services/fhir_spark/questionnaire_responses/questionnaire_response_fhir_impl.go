package questionnaire_responses

import (
	"context"
	"fmt"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type questionnaireResponseFhirClient struct {
	BaseUrl   string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

func NewQuestionnaireResponseFhirClient(baseUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.QuestionnaireResponseFhirClient {
	return &questionnaireResponseFhirClient{
		BaseUrl:   baseUrl,
		Requester: requester,
		Log:       logger,
	}
}

func (c *questionnaireResponseFhirClient) FindQuestionnaireResponses(ctx context.Context, subject, questionnaireID string) ([]fhir_dto.QuestionnaireResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireResponseFhirClient.FindQuestionnaireResponses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, subject),
		zap.String(constvars.LoggingQuestionnaireKey, questionnaireID),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamSubject, subject)
	params.Set(constvars.FhirSearchParamQuestionnaire, utils.BuildReference(constvars.ResourceQuestionnaire, questionnaireID).Reference)
	params.Set(constvars.FhirSearchParamSort, constvars.FhirSortLastUpdatedDesc)

	bundle := new(fhir_dto.FHIRBundle)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodGet,
		Url:      fhirhttp.SearchUrl(c.BaseUrl, constvars.ResourceQuestionnaireResponse, params),
		Resource: constvars.ResourceQuestionnaireResponse,
		Result:   bundle,
		Wrap:     exceptions.ErrGetFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	responses, err := fhirhttp.DecodeEntries[fhir_dto.QuestionnaireResponse](bundle)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceQuestionnaireResponse)
	}

	c.Log.Info("questionnaireResponseFhirClient.FindQuestionnaireResponses succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(responses)),
	)
	return responses, nil
}

func (c *questionnaireResponseFhirClient) CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireResponseFhirClient.CreateQuestionnaireResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	created := new(fhir_dto.QuestionnaireResponse)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, constvars.ResourceQuestionnaireResponse),
		Resource: constvars.ResourceQuestionnaireResponse,
		Body:     request,
		Result:   created,
		Wrap:     exceptions.ErrCreateFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	c.Log.Info("questionnaireResponseFhirClient.CreateQuestionnaireResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, created.ID),
	)
	return created, nil
}

// UpdateQuestionnaireResponse replaces the stored response with a PUT keyed by its id.
func (c *questionnaireResponseFhirClient) UpdateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("questionnaireResponseFhirClient.UpdateQuestionnaireResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, request.ID),
	)

	if request.ID == "" {
		return nil, exceptions.ErrUpdateFHIRResource(fmt.Errorf("missing id"), constvars.ResourceQuestionnaireResponse)
	}

	updated := new(fhir_dto.QuestionnaireResponse)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPut,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, constvars.ResourceQuestionnaireResponse, request.ID),
		Resource: constvars.ResourceQuestionnaireResponse,
		Body:     request,
		Result:   updated,
		Wrap:     exceptions.ErrUpdateFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	c.Log.Info("questionnaireResponseFhirClient.UpdateQuestionnaireResponse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, updated.ID),
	)
	return updated, nil
}
