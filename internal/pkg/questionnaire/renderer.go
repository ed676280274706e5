package questionnaire

import (
	"fmt"
	"reflect"
	"strconv"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
)

type FieldKind string

const (
	FieldKindText           FieldKind = "text"
	FieldKindDate           FieldKind = "date"
	FieldKindCheckboxGroup  FieldKind = "checkbox-group"
	FieldKindValueSetSelect FieldKind = "valueset-select"
	FieldKindRadio          FieldKind = "radio"
	FieldKindCheckbox       FieldKind = "checkbox"
	FieldKindGroup          FieldKind = "group"
	FieldKindReference      FieldKind = "reference"
)

const defaultReferenceResource = "Organization"

// Field is the render model of one question, bound to a Form at Path.
type Field struct {
	Kind           FieldKind `json:"kind"`
	LinkID         string    `json:"link_id"`
	Path           string    `json:"path"`
	Label          string    `json:"label,omitempty"`
	Required       bool      `json:"required"`
	Placeholder    string    `json:"placeholder,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	Mask           string    `json:"mask,omitempty"`
	Value          any       `json:"value,omitempty"`
	Options        []Option  `json:"options,omitempty"`
	ValueSet       string    `json:"value_set,omitempty"`
	ReferenceTypes []string  `json:"reference_types,omitempty"`
	Children       []Field   `json:"children,omitempty"`

	OnChange func(value any) `json:"-"`
}

type Option struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Value    TypedValue `json:"value"`
	Selected bool       `json:"selected"`
}

// TypedValue pairs a FHIR value[x] payload with its type name.
type TypedValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Select marks optionID as the chosen option and reports the option's value
// through OnChange. It returns false when no such option exists.
func (f *Field) Select(optionID string) bool {
	index := -1
	for i := range f.Options {
		if f.Options[i].ID == optionID {
			index = i
			break
		}
	}
	if index < 0 {
		return false
	}

	for i := range f.Options {
		f.Options[i].Selected = i == index
	}
	if f.OnChange != nil {
		f.OnChange(f.Options[index].Value.Value)
	}
	return true
}

// SelectedOption returns the id of the selected option, or "".
func (f *Field) SelectedOption() string {
	for _, option := range f.Options {
		if option.Selected {
			return option.ID
		}
	}
	return ""
}

// Render builds the fields of group's direct children. Fields hidden by their
// enable-when rule are omitted, as are items of unsupported types.
func Render(form *Form, group *fhir_dto.QuestionnaireItem, responseItem *fhir_dto.QuestionnaireResponseItem, parentPath string) []Field {
	if group == nil {
		return nil
	}

	fields := make([]Field, 0, len(group.Item))
	for _, question := range group.Item {
		var rule *fhir_dto.QuestionnaireEnableWhen
		if len(question.EnableWhen) > 0 {
			rule = &question.EnableWhen[0]
		}
		if !EnableWhenGate(form.Values(), rule) {
			continue
		}

		var response *fhir_dto.QuestionnaireResponseItem
		if responseItem != nil {
			response = findDirectResponseItem(responseItem.Item, question.LinkID)
		}

		field, ok := renderItem(form, group, question, response, JoinPath(parentPath, question.LinkID))
		if ok {
			fields = append(fields, field)
		}
	}
	return fields
}

func renderItem(form *Form, group *fhir_dto.QuestionnaireItem, question fhir_dto.QuestionnaireItem, response *fhir_dto.QuestionnaireResponseItem, path string) (Field, bool) {
	field := Field{
		LinkID:      question.LinkID,
		Path:        path,
		Label:       question.Text,
		Required:    question.Required,
		Placeholder: extensionString(question, constvars.ExtensionEntryFormat),
		Icon:        extensionString(question, constvars.ExtensionItemIcon),
		Mask:        extensionString(question, constvars.ExtensionItemMask),
		Value:       form.Value(path),
		OnChange: func(value any) {
			form.SetValue(path, value)
		},
	}

	switch question.Type {
	case constvars.ItemTypeString:
		field.Kind = FieldKindText
	case constvars.ItemTypeDate:
		field.Kind = FieldKindDate
	case constvars.ItemTypeChoice:
		renderChoice(&field, form, question, response)
	case constvars.ItemTypeBoolean:
		field.Kind = FieldKindCheckbox
	case constvars.ItemTypeGroup:
		field.Kind = FieldKindGroup
		field.Value = nil
		field.OnChange = nil
		field.Children = Render(form, FindQuestionItem(group.Item, question.LinkID), response, path)
	case constvars.ItemTypeReference:
		field.Kind = FieldKindReference
		field.ReferenceTypes = referenceTypes(question)
		field.OnChange = func(value any) {
			form.SetValue(path, ReferenceFromResource(value))
		}
	default:
		return Field{}, false
	}
	return field, true
}

func renderChoice(field *Field, form *Form, question fhir_dto.QuestionnaireItem, response *fhir_dto.QuestionnaireResponseItem) {
	switch {
	case ItemControl(question) == constvars.ItemControlCheckBox:
		field.Kind = FieldKindCheckboxGroup
		for i, option := range question.AnswerOption {
			if option.ValueString == nil {
				continue
			}
			field.Options = append(field.Options, Option{
				ID:       fmt.Sprintf("%s-option-%d", question.LinkID, i),
				Label:    *option.ValueString,
				Value:    TypedValue{Type: "string", Value: *option.ValueString},
				Selected: containsString(field.Value, *option.ValueString),
			})
		}
	case question.AnswerValueSet != "":
		field.Kind = FieldKindValueSetSelect
		field.ValueSet = question.AnswerValueSet
		if current, ok := currentAnswer(response); ok {
			field.Value = current.Value
		}
		path := field.Path
		field.OnChange = func(value any) {
			form.SetValue(path, FormValues{answerKindCoding: value})
		}
	default:
		field.Kind = FieldKindRadio
		field.Options = radioOptions(question, response)
	}
}

func radioOptions(question fhir_dto.QuestionnaireItem, response *fhir_dto.QuestionnaireResponseItem) []Option {
	var initial *TypedValue
	if len(question.Initial) > 0 {
		initial = initialTypedValue(question.Initial[0])
	}

	options := make([]Option, 0, len(question.AnswerOption))
	defaultIndex := -1
	for i, answerOption := range question.AnswerOption {
		value, ok := optionTypedValue(answerOption)
		if !ok || IsFalsy(value.Value) {
			continue
		}
		if initial != nil && reflect.DeepEqual(value, *initial) {
			defaultIndex = len(options)
		}
		options = append(options, Option{
			ID:    fmt.Sprintf("%s-option-%d", question.LinkID, i),
			Label: typedValueLabel(value),
			Value: value,
		})
	}

	selected := defaultIndex
	if current, ok := currentAnswer(response); ok {
		for i, option := range options {
			if reflect.DeepEqual(option.Value.Value, current.Value) {
				selected = i
				break
			}
		}
	}
	if selected >= 0 {
		options[selected].Selected = true
	}
	return options
}

func currentAnswer(response *fhir_dto.QuestionnaireResponseItem) (TypedValue, bool) {
	if response == nil || len(response.Answer) == 0 {
		return TypedValue{}, false
	}
	answer := response.Answer[0]
	switch {
	case answer.ValueString != nil:
		return TypedValue{Type: "string", Value: *answer.ValueString}, true
	case answer.ValueInteger != nil:
		return TypedValue{Type: "integer", Value: *answer.ValueInteger}, true
	case answer.ValueDate != nil:
		return TypedValue{Type: "date", Value: *answer.ValueDate}, true
	case answer.ValueCoding != nil:
		return TypedValue{Type: "Coding", Value: *answer.ValueCoding}, true
	case answer.ValueReference != nil:
		return TypedValue{Type: "Reference", Value: *answer.ValueReference}, true
	case answer.ValueBoolean != nil:
		return TypedValue{Type: "boolean", Value: *answer.ValueBoolean}, true
	}
	return TypedValue{}, false
}

func optionTypedValue(option fhir_dto.QuestionnaireAnswerOption) (TypedValue, bool) {
	switch {
	case option.ValueString != nil:
		return TypedValue{Type: "string", Value: *option.ValueString}, true
	case option.ValueInteger != nil:
		return TypedValue{Type: "integer", Value: *option.ValueInteger}, true
	case option.ValueDate != nil:
		return TypedValue{Type: "date", Value: *option.ValueDate}, true
	case option.ValueCoding != nil:
		return TypedValue{Type: "Coding", Value: *option.ValueCoding}, true
	case option.ValueReference != nil:
		return TypedValue{Type: "Reference", Value: *option.ValueReference}, true
	}
	return TypedValue{}, false
}

func initialTypedValue(initial fhir_dto.QuestionnaireInitial) *TypedValue {
	option := fhir_dto.QuestionnaireAnswerOption{
		ValueString:    initial.ValueString,
		ValueInteger:   initial.ValueInteger,
		ValueDate:      initial.ValueDate,
		ValueCoding:    initial.ValueCoding,
		ValueReference: initial.ValueReference,
	}
	value, ok := optionTypedValue(option)
	if !ok {
		return nil
	}
	return &value
}

func typedValueLabel(value TypedValue) string {
	switch v := value.Value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case fhir_dto.Coding:
		if v.Display != "" {
			return v.Display
		}
		return v.Code
	case fhir_dto.Reference:
		if v.Display != "" {
			return v.Display
		}
		return v.Reference
	}
	return fmt.Sprint(value.Value)
}

func referenceTypes(question fhir_dto.QuestionnaireItem) []string {
	var types []string
	for _, extension := range question.Extension {
		if extension.Url == constvars.ExtensionReferenceResource && extension.ValueCode != "" {
			types = append(types, extension.ValueCode)
		}
	}
	if len(types) == 0 {
		types = []string{defaultReferenceResource}
	}
	return types
}

// ReferenceFromResource turns a selected resource into a reference. Values
// that already are references pass through.
func ReferenceFromResource(value any) any {
	switch v := value.(type) {
	case fhir_dto.Reference, *fhir_dto.Reference:
		return v
	}

	resource, ok := asMap(value)
	if !ok {
		return value
	}
	if _, isReference := resource["reference"]; isReference {
		return value
	}

	resourceType, _ := resource["resourceType"].(string)
	id, _ := resource["id"].(string)
	if resourceType == "" || id == "" {
		return value
	}

	reference := fhir_dto.Reference{Reference: fmt.Sprintf(constvars.FhirReferenceFormat, resourceType, id)}
	if name, ok := resource["name"].(string); ok {
		reference.Display = name
	}
	return reference
}

func containsString(value any, target string) bool {
	switch values := value.(type) {
	case []string:
		for _, v := range values {
			if v == target {
				return true
			}
		}
	case []any:
		for _, v := range values {
			if s, ok := v.(string); ok && s == target {
				return true
			}
		}
	case string:
		return values == target
	}
	return false
}
