package contracts

import "context"

// SeedSource yields the raw FHIR resources uploaded by upload-core-data,
// keyed by the path or object name they were read from.
type SeedSource interface {
	Name() string
	Load(ctx context.Context) (map[string][]byte, error)
}
