package questionnaire

import (
	"testing"
	"time"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

func TestBuildInitialValues(t *testing.T) {
	t.Run("Defaults Without Response", func(t *testing.T) {
		items := []fhir_dto.QuestionnaireItem{
			{LinkID: "name", Type: constvars.ItemTypeString},
			{LinkID: "birthDate", Type: constvars.ItemTypeDate},
			{LinkID: "hobby", Type: constvars.ItemTypeOpenChoice},
			{LinkID: "consent", Type: constvars.ItemTypeBoolean},
			{LinkID: "emptyGroup", Type: constvars.ItemTypeGroup},
			{LinkID: "insurer", Type: constvars.ItemTypeReference},
			{LinkID: "score", Type: "integer"},
		}

		values := BuildInitialValues(items, nil)

		expected := FormValues{
			"name":       "",
			"birthDate":  nil,
			"hobby":      FormValues{},
			"consent":    true,
			"emptyGroup": FormValues{},
			"insurer":    nil,
			"score":      nil,
		}
		assert.Equal(t, expected, values, "every item should start from its type default")
	})

	t.Run("Nested Group Recurses", func(t *testing.T) {
		items := []fhir_dto.QuestionnaireItem{
			{
				LinkID: "contact",
				Type:   constvars.ItemTypeGroup,
				Item: []fhir_dto.QuestionnaireItem{
					{LinkID: "phone", Type: constvars.ItemTypeString},
				},
			},
		}
		responses := []fhir_dto.QuestionnaireResponseItem{
			{
				LinkID: "contact",
				Item: []fhir_dto.QuestionnaireResponseItem{
					{LinkID: "phone", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("555")}}},
				},
			},
		}

		values := BuildInitialValues(items, responses)

		assert.Equal(t, FormValues{"contact": FormValues{"phone": "555"}}, values)
	})

	t.Run("Answers Found At Any Depth", func(t *testing.T) {
		items := []fhir_dto.QuestionnaireItem{
			{LinkID: "phone", Type: constvars.ItemTypeString},
			{
				LinkID: "contact",
				Type:   constvars.ItemTypeGroup,
				Item: []fhir_dto.QuestionnaireItem{
					{LinkID: "email", Type: constvars.ItemTypeString},
				},
			},
		}
		responses := []fhir_dto.QuestionnaireResponseItem{
			{
				LinkID: "legacy",
				Item: []fhir_dto.QuestionnaireResponseItem{
					{LinkID: "phone", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("555")}}},
				},
			},
			{
				LinkID: "contact",
				Item: []fhir_dto.QuestionnaireResponseItem{
					{
						LinkID: "details",
						Item: []fhir_dto.QuestionnaireResponseItem{
							{LinkID: "email", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("a@b.c")}}},
						},
					},
				},
			},
		}

		values := BuildInitialValues(items, responses)

		assert.Equal(t, "555", values["phone"], "answer under an unrelated group should still prefill")
		assert.Equal(t, FormValues{"email": "a@b.c"}, values["contact"], "answer one level deeper should still prefill")
	})

	t.Run("Answer Kinds", func(t *testing.T) {
		coding := fhir_dto.Coding{System: "http://loinc.org", Code: "LA6576-8"}
		reference := fhir_dto.Reference{Reference: "Organization/1"}
		items := []fhir_dto.QuestionnaireItem{
			{LinkID: "date", Type: constvars.ItemTypeDate},
			{LinkID: "coding", Type: constvars.ItemTypeChoice},
			{LinkID: "reference", Type: constvars.ItemTypeReference},
			{LinkID: "many", Type: constvars.ItemTypeChoice},
			{LinkID: "blank", Type: constvars.ItemTypeString},
			{LinkID: "unknown", Type: constvars.ItemTypeString},
		}
		responses := []fhir_dto.QuestionnaireResponseItem{
			{LinkID: "date", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueDate: strPtr("2024-02-29")}}},
			{LinkID: "coding", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueCoding: &coding}}},
			{LinkID: "reference", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueReference: &reference}}},
			{LinkID: "many", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("a")}, {ValueString: strPtr("b")}}},
			{LinkID: "blank", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("")}}},
			{LinkID: "unknown", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueInteger: intPtr(4)}}},
		}

		values := BuildInitialValues(items, responses)

		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), values["date"])
		assert.Equal(t, FormValues{"valueCoding": coding}, values["coding"])
		assert.Equal(t, reference, values["reference"])
		assert.Equal(t, []any{"a", "b"}, values["many"], "multiple answers should stay a list")
		assert.Equal(t, "", values["blank"], "empty raw values should become an empty string")
		assert.Equal(t, "", values["unknown"], "unsupported answer kinds should become an empty string")
	})
}
