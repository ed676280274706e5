package fhir_dto

type QuestionnaireResponse struct {
	ResourceType  string                      `json:"resourceType"`
	ID            string                      `json:"id,omitempty"`
	Meta          *Meta                       `json:"meta,omitempty"`
	Status        string                      `json:"status,omitempty"`
	Questionnaire string                      `json:"questionnaire,omitempty"`
	Subject       *Reference                  `json:"subject,omitempty"`
	Authored      string                      `json:"authored,omitempty"`
	Author        *Reference                  `json:"author,omitempty"`
	Source        *Reference                  `json:"source,omitempty"`
	Identifier    *Identifier                 `json:"identifier,omitempty"`
	Item          []QuestionnaireResponseItem `json:"item,omitempty"`
}

type QuestionnaireResponseItem struct {
	ID                string                            `json:"id,omitempty"`
	LinkID            string                            `json:"linkId"`
	Definition        string                            `json:"definition,omitempty"`
	Text              string                            `json:"text,omitempty"`
	Extension         []Extension                       `json:"extension,omitempty"`
	ModifierExtension []Extension                       `json:"modifierExtension,omitempty"`
	Answer            []QuestionnaireResponseItemAnswer `json:"answer,omitempty"`
	Item              []QuestionnaireResponseItem       `json:"item,omitempty"`
}

type QuestionnaireResponseItemAnswer struct {
	ValueBoolean    *bool       `json:"valueBoolean,omitempty" mapstructure:"valueBoolean"`
	ValueDecimal    *float64    `json:"valueDecimal,omitempty" mapstructure:"valueDecimal"`
	ValueInteger    *int        `json:"valueInteger,omitempty" mapstructure:"valueInteger"`
	ValueDate       *string     `json:"valueDate,omitempty" mapstructure:"valueDate"`
	ValueDateTime   *string     `json:"valueDateTime,omitempty" mapstructure:"valueDateTime"`
	ValueTime       *string     `json:"valueTime,omitempty" mapstructure:"valueTime"`
	ValueString     *string     `json:"valueString,omitempty" mapstructure:"valueString"`
	ValueUri        *string     `json:"valueUri,omitempty" mapstructure:"valueUri"`
	ValueAttachment *Attachment `json:"valueAttachment,omitempty" mapstructure:"valueAttachment"`
	ValueCoding     *Coding     `json:"valueCoding,omitempty" mapstructure:"valueCoding"`
	ValueQuantity   *Quantity   `json:"valueQuantity,omitempty" mapstructure:"valueQuantity"`
	ValueReference  *Reference  `json:"valueReference,omitempty" mapstructure:"valueReference"`
}
