package valuesets

import (
	"context"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type valueSetUsecase struct {
	ValueSetFhirClient contracts.ValueSetFhirClient
	Log                *zap.Logger
}

func NewValueSetUsecase(valueSetFhirClient contracts.ValueSetFhirClient, logger *zap.Logger) contracts.ValueSetUsecase {
	return &valueSetUsecase{
		ValueSetFhirClient: valueSetFhirClient,
		Log:                logger,
	}
}

// ExpandValueSet returns the codings of the expansion as select options.
func (uc *valueSetUsecase) ExpandValueSet(ctx context.Context, request *requests.ExpandValueSet) ([]responses.ValueSetOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("valueSetUsecase.ExpandValueSet called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, request.Url),
	)

	valueSet, err := uc.ValueSetFhirClient.ExpandValueSet(ctx, request.Url, request.Filter)
	if err != nil {
		uc.Log.Error("valueSetUsecase.ExpandValueSet error expanding value set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	options := []responses.ValueSetOption{}
	if valueSet.Expansion == nil {
		return options, nil
	}

	for _, contains := range valueSet.Expansion.Contains {
		label := contains.Display
		if label == "" {
			label = contains.Code
		}
		options = append(options, responses.ValueSetOption{
			Coding: fhir_dto.Coding{
				System:  contains.System,
				Code:    contains.Code,
				Display: contains.Display,
			},
			Label: label,
		})
	}

	uc.Log.Info("valueSetUsecase.ExpandValueSet succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(options)),
	)
	return options, nil
}
