package utils

import (
	"fmt"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
	"strings"
)

func BuildReference(resourceType, id string) fhir_dto.Reference {
	return fhir_dto.Reference{Reference: fmt.Sprintf(constvars.FhirReferenceFormat, resourceType, id)}
}

// SubjectReference turns a token subject into a reference. Bare ids are
// treated as patient ids.
func SubjectReference(subject string) fhir_dto.Reference {
	if strings.Contains(subject, "/") {
		return fhir_dto.Reference{Reference: subject}
	}
	return BuildReference(constvars.ResourcePatient, subject)
}

func ParseReference(reference string) (resourceType, id string) {
	parts := strings.SplitN(reference, "/", 2)
	if len(parts) != 2 {
		return "", reference
	}
	return parts[0], parts[1]
}
