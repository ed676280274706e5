package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/fhir_dto"
)

type ValueSetFhirClient interface {
	ExpandValueSet(ctx context.Context, url, filter string) (*fhir_dto.ValueSet, error)
}

type ValueSetUsecase interface {
	ExpandValueSet(ctx context.Context, request *requests.ExpandValueSet) ([]responses.ValueSetOption, error)
}
