package contracts

import (
	"context"
	"questionnaire-service/internal/pkg/fhir_dto"
)

type BundleFhirClient interface {
	// PostBundle posts a batch or transaction bundle to the FHIR base
	// endpoint and returns the response bundle. The bundle may be a
	// *fhir_dto.FHIRBundle or its encoded json.RawMessage.
	PostBundle(ctx context.Context, bundle any) (*fhir_dto.FHIRBundle, error)
}
