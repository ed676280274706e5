package fhirhttp

import (
	"net/url"
	"questionnaire-service/internal/pkg/fhir_dto"
	"strings"

	"github.com/goccy/go-json"
)

// ResourceUrl joins the FHIR base url with path segments.
func ResourceUrl(baseUrl string, segments ...string) string {
	return strings.TrimSuffix(baseUrl, "/") + "/" + strings.Join(segments, "/")
}

func SearchUrl(baseUrl, resourceType string, params url.Values) string {
	searchUrl := ResourceUrl(baseUrl, resourceType)
	if len(params) == 0 {
		return searchUrl
	}
	return searchUrl + "?" + params.Encode()
}

// EntryResources returns the raw resource of every searchset entry that has one.
func EntryResources(bundle *fhir_dto.FHIRBundle) []json.RawMessage {
	resources := make([]json.RawMessage, 0, len(bundle.Entry))
	for _, entry := range bundle.Entry {
		if len(entry.Resource) == 0 {
			continue
		}
		resources = append(resources, entry.Resource)
	}
	return resources
}

// DecodeEntries decodes every searchset entry into T.
func DecodeEntries[T any](bundle *fhir_dto.FHIRBundle) ([]T, error) {
	resources := EntryResources(bundle)
	result := make([]T, 0, len(resources))
	for _, raw := range resources {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
