package resources

import (
	"context"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type resourceFhirClient struct {
	BaseUrl   string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

func NewResourceFhirClient(baseUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.ResourceFhirClient {
	return &resourceFhirClient{
		BaseUrl:   baseUrl,
		Requester: requester,
		Log:       logger,
	}
}

func (c *resourceFhirClient) Search(ctx context.Context, resourceType string, params url.Values) ([]json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("resourceFhirClient.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
		zap.Any(constvars.LoggingQueryParamsKey, params),
	)

	bundle := new(fhir_dto.FHIRBundle)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodGet,
		Url:      fhirhttp.SearchUrl(c.BaseUrl, resourceType, params),
		Resource: resourceType,
		Result:   bundle,
		Wrap:     exceptions.ErrGetFHIRResource,
	})
	if err != nil {
		return nil, err
	}
	return fhirhttp.EntryResources(bundle), nil
}

// SearchOne returns the first match, or nil when the searchset is empty.
func (c *resourceFhirClient) SearchOne(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error) {
	limited := url.Values{}
	for key, values := range params {
		limited[key] = values
	}
	limited.Set(constvars.FhirSearchParamCount, "1")

	resources, err := c.Search(ctx, resourceType, limited)
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, nil
	}
	return resources[0], nil
}

func (c *resourceFhirClient) CreateResource(ctx context.Context, resourceType string, resource json.RawMessage) (json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("resourceFhirClient.CreateResource called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resourceType),
	)

	var created json.RawMessage
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, resourceType),
		Resource: resourceType,
		Body:     resource,
		Result:   &created,
		Wrap:     exceptions.ErrCreateFHIRResource,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Post sends body to a path below the FHIR base url, such as an operation.
func (c *resourceFhirClient) Post(ctx context.Context, path string, body any, result any) error {
	return c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      fhirhttp.ResourceUrl(c.BaseUrl, path),
		Resource: path,
		Body:     body,
		Result:   result,
		Wrap:     exceptions.ErrCreateFHIRResource,
	})
}
