package bundle

import (
	"context"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type bundleFhirClient struct {
	BaseUrl   string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

func NewBundleFhirClient(baseUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.BundleFhirClient {
	return &bundleFhirClient{
		BaseUrl:   baseUrl,
		Requester: requester,
		Log:       logger,
	}
}

// PostBundle accepts a *fhir_dto.FHIRBundle or an already encoded bundle.
func (c *bundleFhirClient) PostBundle(ctx context.Context, bundle any) (*fhir_dto.FHIRBundle, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("bundleFhirClient.PostBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result := new(fhir_dto.FHIRBundle)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      c.BaseUrl,
		Resource: constvars.ResourceBundle,
		Body:     bundle,
		Result:   result,
		Wrap:     exceptions.ErrCreateFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	c.Log.Info("bundleFhirClient.PostBundle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result.Entry)),
	)
	return result, nil
}
