package valuesets

import (
	"context"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type valueSetFhirClient struct {
	BaseUrl   string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

func NewValueSetFhirClient(baseUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.ValueSetFhirClient {
	return &valueSetFhirClient{
		BaseUrl:   baseUrl,
		Requester: requester,
		Log:       logger,
	}
}

// ExpandValueSet calls ValueSet/$expand for the canonical url.
func (c *valueSetFhirClient) ExpandValueSet(ctx context.Context, valueSetUrl, filter string) (*fhir_dto.ValueSet, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("valueSetFhirClient.ExpandValueSet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, valueSetUrl),
	)

	params := url.Values{}
	params.Set(constvars.FhirSearchParamURL, valueSetUrl)
	if filter != "" {
		params.Set(constvars.FhirSearchParamFilter, filter)
	}

	valueSet := new(fhir_dto.ValueSet)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodGet,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, constvars.ResourceValueSet, constvars.FhirOperationExpand) + "?" + params.Encode(),
		Resource: constvars.ResourceValueSet,
		Result:   valueSet,
		Wrap:     exceptions.ErrGetFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	c.Log.Info("valueSetFhirClient.ExpandValueSet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return valueSet, nil
}
