package contracts

import (
	"context"
	"net/url"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
)

// ResourceFhirClient works on raw resources of any type.
type ResourceFhirClient interface {
	Search(ctx context.Context, resourceType string, params url.Values) ([]json.RawMessage, error)
	SearchOne(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error)
	CreateResource(ctx context.Context, resourceType string, resource json.RawMessage) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any, result any) error
}

// AdminFhirClient reaches the project administration endpoints that sit
// outside the FHIR base url.
type AdminFhirClient interface {
	CreateBot(ctx context.Context, projectID, name, description string) (*fhir_dto.Bot, error)
	UpdateProjectMembership(ctx context.Context, projectID string, membership *fhir_dto.ProjectMembership) error
}
