package questionnaire

import (
	"testing"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRadio(t *testing.T) {
	group := &fhir_dto.QuestionnaireItem{
		LinkID: "g1",
		Type:   constvars.ItemTypeGroup,
		Item: []fhir_dto.QuestionnaireItem{
			{
				LinkID: "name",
				Type:   constvars.ItemTypeChoice,
				AnswerOption: []fhir_dto.QuestionnaireAnswerOption{
					{ValueString: strPtr("low")},
					{ValueString: strPtr("high")},
					{ValueString: strPtr("")},
				},
				Initial: []fhir_dto.QuestionnaireInitial{{ValueString: strPtr("low")}},
			},
		},
	}

	t.Run("Select Reports Typed Value", func(t *testing.T) {
		form := NewForm(FormValues{"name": nil})
		fields := Render(form, group, nil, "")
		require.Len(t, fields, 1)
		field := fields[0]

		var received any
		field.OnChange = func(value any) { received = value }

		assert.Equal(t, FieldKindRadio, field.Kind)
		require.Len(t, field.Options, 2, "options without a value are skipped")
		assert.Equal(t, "name-option-0", field.SelectedOption(), "initial value should preselect its option")

		assert.True(t, field.Select("name-option-1"))
		assert.Equal(t, "high", received, "callback should get the option value, not its id")
		assert.Equal(t, "name-option-1", field.SelectedOption())
		assert.False(t, field.Select("name-option-9"))
	})

	t.Run("Select Writes To Form", func(t *testing.T) {
		form := NewForm(FormValues{"name": nil})
		fields := Render(form, group, nil, "")

		fields[0].Select("name-option-1")

		assert.Equal(t, "high", form.Value("name"))
	})

	t.Run("Saved Answer Wins Over Initial", func(t *testing.T) {
		response := &fhir_dto.QuestionnaireResponseItem{
			LinkID: "g1",
			Item: []fhir_dto.QuestionnaireResponseItem{
				{LinkID: "name", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueString: strPtr("high")}}},
			},
		}

		fields := Render(NewForm(nil), group, response, "")

		assert.Equal(t, "name-option-1", fields[0].SelectedOption())
	})
}

func TestRender(t *testing.T) {
	group := &fhir_dto.QuestionnaireItem{
		LinkID: "g1",
		Type:   constvars.ItemTypeGroup,
		Item: []fhir_dto.QuestionnaireItem{
			{LinkID: "A", Type: constvars.ItemTypeString, Text: "A", Required: true, Extension: []fhir_dto.Extension{
				{Url: constvars.ExtensionEntryFormat, ValueString: "type here"},
			}},
			{LinkID: "B", Type: constvars.ItemTypeString, EnableWhen: []fhir_dto.QuestionnaireEnableWhen{
				{Question: "A", Operator: "=", AnswerString: strPtr("X")},
			}},
			{LinkID: "symptoms", Type: constvars.ItemTypeChoice, Extension: []fhir_dto.Extension{itemControlExtension(constvars.ItemControlCheckBox)},
				AnswerOption: []fhir_dto.QuestionnaireAnswerOption{{ValueString: strPtr("cough")}, {ValueString: strPtr("fever")}}},
			{LinkID: "language", Type: constvars.ItemTypeChoice, AnswerValueSet: "http://hl7.org/fhir/ValueSet/languages"},
			{LinkID: "insurer", Type: constvars.ItemTypeReference},
			{LinkID: "address", Type: constvars.ItemTypeGroup, Item: []fhir_dto.QuestionnaireItem{
				{LinkID: "city", Type: constvars.ItemTypeString},
			}},
			{LinkID: "photo", Type: "attachment"},
		},
	}

	t.Run("Enable When Equal", func(t *testing.T) {
		hidden := Render(NewForm(FormValues{"A": "Y"}), group, nil, "")
		shown := Render(NewForm(FormValues{"A": "X"}), group, nil, "")

		assert.NotContains(t, linkIDs(hidden), "B")
		assert.Contains(t, linkIDs(shown), "B")
	})

	t.Run("Field Kinds And Paths", func(t *testing.T) {
		form := NewForm(FormValues{"A": "X", "symptoms": []any{"fever"}})
		fields := Render(form, group, nil, "")

		assert.Equal(t, []string{"A", "B", "symptoms", "language", "insurer", "address"}, linkIDs(fields), "unknown types render nothing")
		assert.Equal(t, "type here", fields[0].Placeholder)
		assert.Equal(t, FieldKindCheckboxGroup, fields[2].Kind)
		assert.True(t, fields[2].Options[1].Selected)
		assert.Equal(t, FieldKindValueSetSelect, fields[3].Kind)
		assert.Equal(t, []string{"Organization"}, fields[4].ReferenceTypes)
		require.Len(t, fields[5].Children, 1)
		assert.Equal(t, "address.city", fields[5].Children[0].Path)
	})

	t.Run("Callbacks Write Typed Values", func(t *testing.T) {
		form := NewForm(FormValues{"A": "X"})
		fields := Render(form, group, nil, "")

		fields[3].OnChange(fhir_dto.Coding{Code: "id"})
		fields[4].OnChange(map[string]any{"resourceType": "Organization", "id": "org-1"})
		fields[5].Children[0].OnChange("Bandung")

		assert.Equal(t, FormValues{"valueCoding": fhir_dto.Coding{Code: "id"}}, form.Value("language"))
		assert.Equal(t, fhir_dto.Reference{Reference: "Organization/org-1"}, form.Value("insurer"))
		assert.Equal(t, "Bandung", form.Value("address.city"))
	})
}

func linkIDs(fields []Field) []string {
	ids := make([]string, 0, len(fields))
	for _, field := range fields {
		ids = append(ids, field.LinkID)
	}
	return ids
}

func TestRadioAnswerRoundTrip(t *testing.T) {
	subject := fhir_dto.Reference{Reference: "Patient/123"}
	red := fhir_dto.Coding{System: "s", Code: "red", Display: "Red"}
	q := &fhir_dto.Questionnaire{ID: "colors", Item: []fhir_dto.QuestionnaireItem{
		{
			LinkID: "g1",
			Type:   constvars.ItemTypeGroup,
			Item: []fhir_dto.QuestionnaireItem{
				{
					LinkID: "color",
					Type:   constvars.ItemTypeChoice,
					AnswerOption: []fhir_dto.QuestionnaireAnswerOption{
						{ValueCoding: &red},
						{ValueCoding: &fhir_dto.Coding{System: "s", Code: "blue", Display: "Blue"}},
					},
				},
				{
					LinkID: "score",
					Type:   constvars.ItemTypeChoice,
					AnswerOption: []fhir_dto.QuestionnaireAnswerOption{
						{ValueInteger: intPtr(1)},
						{ValueInteger: intPtr(2)},
					},
				},
			},
		},
	}}
	group := &q.Item[0]

	t.Run("Coding Option Survives Save And Reload", func(t *testing.T) {
		form := NewForm(BuildInitialValues(q.Item, nil))
		fields := Render(form, group, nil, "g1")
		require.Len(t, fields, 2)

		require.True(t, fields[0].Select("color-option-0"))
		assert.Equal(t, red, form.Value("g1.color"))

		// the client posts the selected value back as a JSON object
		submitted := FormValues{"g1": FormValues{
			"color": map[string]any{"system": "s", "code": "red", "display": "Red"},
			"score": float64(2),
		}}
		response := BuildResponse(q, submitted, subject, subject, nil)

		require.Len(t, response.Item, 1)
		answers := response.Item[0].Item
		require.Len(t, answers, 2)
		assert.Equal(t, []fhir_dto.QuestionnaireResponseItemAnswer{{ValueCoding: &red}}, answers[0].Answer)
		assert.Equal(t, []fhir_dto.QuestionnaireResponseItemAnswer{{ValueInteger: intPtr(2)}}, answers[1].Answer)

		reloaded := Render(NewForm(nil), group, &response.Item[0], "g1")
		assert.Equal(t, "color-option-0", reloaded[0].SelectedOption())
		assert.Equal(t, "score-option-1", reloaded[1].SelectedOption())
	})

	t.Run("Prefilled Coding Is Saved Unchanged", func(t *testing.T) {
		previous := &fhir_dto.QuestionnaireResponse{Item: []fhir_dto.QuestionnaireResponseItem{
			{LinkID: "g1", Item: []fhir_dto.QuestionnaireResponseItem{
				{LinkID: "color", Answer: []fhir_dto.QuestionnaireResponseItemAnswer{{ValueCoding: &red}}},
			}},
		}}
		values := BuildInitialValues(q.Item, previous.Item)

		response := BuildResponse(q, values, subject, subject, nil)

		assert.Equal(t, &red, response.Item[0].Item[0].Answer[0].ValueCoding)
		assert.Nil(t, response.Item[0].Item[0].Answer[0].ValueString)
	})

	t.Run("Struct Values Keep Their Type", func(t *testing.T) {
		assert.Equal(t, &red, choiceAnswer(red).ValueCoding)
		assert.Equal(t, "plain", *choiceAnswer("plain").ValueString)
		assert.Equal(t, "1.5", *choiceAnswer(1.5).ValueString)
		assert.Equal(t, &fhir_dto.Reference{Reference: "Organization/1"}, choiceAnswer(map[string]any{"reference": "Organization/1"}).ValueReference)
	})
}
