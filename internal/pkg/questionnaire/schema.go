package questionnaire

import (
	"strings"
	"time"

	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Schema is the validation tree derived from a list of question items.
type Schema struct {
	Fields []SchemaField
}

type SchemaField struct {
	Key      string
	Type     string
	Required bool
	Nested   *Schema
}

// ValidationErrors maps a dot path to its message.
type ValidationErrors map[string]string

func DeriveSchema(items []fhir_dto.QuestionnaireItem) *Schema {
	schema := &Schema{Fields: make([]SchemaField, 0, len(items))}
	for _, item := range items {
		field := SchemaField{
			Key:      item.LinkID,
			Type:     item.Type,
			Required: item.Required,
		}
		if item.Type == constvars.ItemTypeGroup && len(item.Item) > 0 {
			field.Nested = DeriveSchema(item.Item)
		}
		schema.Fields = append(schema.Fields, field)
	}
	return schema
}

// Parse validates values and returns the transformed output. Only declared
// keys are kept. The second return value is nil when values are valid.
func (s *Schema) Parse(values FormValues) (FormValues, ValidationErrors) {
	errs := ValidationErrors{}
	parsed := s.parse(values, "", errs)
	if len(errs) == 0 {
		return parsed, nil
	}
	return parsed, errs
}

func (s *Schema) parse(values map[string]any, parentPath string, errs ValidationErrors) FormValues {
	parsed := FormValues{}
	for _, field := range s.Fields {
		path := JoinPath(parentPath, field.Key)
		value, present := values[field.Key]

		if field.Nested != nil {
			nested, _ := asMap(value)
			parsed[field.Key] = field.Nested.parse(nested, path, errs)
			continue
		}

		switch field.Type {
		case constvars.ItemTypeString:
			output, message := parseString(value, field.Required)
			if message != "" {
				errs[path] = message
				continue
			}
			if present {
				parsed[field.Key] = output
			}
		case constvars.ItemTypeDate:
			output, message := parseDateValue(value, field.Required)
			if message != "" {
				errs[path] = message
				continue
			}
			if present {
				parsed[field.Key] = output
			}
		default:
			if present {
				parsed[field.Key] = value
			}
		}
	}
	return parsed
}

func parseString(value any, required bool) (any, string) {
	if !required {
		return value, ""
	}

	s, ok := value.(string)
	if !ok {
		return nil, constvars.FormFieldRequiredMessage
	}
	trimmed := strings.TrimSpace(s)
	if err := validate.Var(trimmed, "required"); err != nil {
		return nil, constvars.FormFieldRequiredMessage
	}
	return trimmed, ""
}

func parseDateValue(value any, required bool) (any, string) {
	date, ok := toDate(value)
	if ok {
		return date.Format(constvars.DateLayout), ""
	}
	if required {
		return nil, constvars.FormFieldRequiredMessage
	}
	if IsFalsy(value) {
		return nil, ""
	}
	return nil, constvars.FormFieldInvalidDateMessage
}

func toDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, !v.IsZero()
	case string:
		if v == "" {
			return time.Time{}, false
		}
		parsed, err := ParseDate(v)
		return parsed, err == nil
	}
	return time.Time{}, false
}
