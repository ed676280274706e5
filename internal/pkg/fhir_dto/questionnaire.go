package fhir_dto

type Questionnaire struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Meta         *Meta               `json:"meta,omitempty"`
	Url          string              `json:"url,omitempty"`
	Name         string              `json:"name,omitempty"`
	Title        string              `json:"title,omitempty"`
	Status       string              `json:"status,omitempty"`
	Description  string              `json:"description,omitempty"`
	Extension    []Extension         `json:"extension,omitempty"`
	Item         []QuestionnaireItem `json:"item,omitempty"`
}

type QuestionnaireItem struct {
	ID                string                      `json:"id,omitempty"`
	LinkID            string                      `json:"linkId"`
	Definition        string                      `json:"definition,omitempty"`
	Prefix            string                      `json:"prefix,omitempty"`
	Text              string                      `json:"text,omitempty"`
	Type              string                      `json:"type"`
	Required          bool                        `json:"required,omitempty"`
	Repeats           bool                        `json:"repeats,omitempty"`
	ReadOnly          bool                        `json:"readOnly,omitempty"`
	EnableWhen        []QuestionnaireEnableWhen   `json:"enableWhen,omitempty"`
	AnswerValueSet    string                      `json:"answerValueSet,omitempty"`
	AnswerOption      []QuestionnaireAnswerOption `json:"answerOption,omitempty"`
	Initial           []QuestionnaireInitial      `json:"initial,omitempty"`
	Extension         []Extension                 `json:"extension,omitempty"`
	ModifierExtension []Extension                 `json:"modifierExtension,omitempty"`
	Item              []QuestionnaireItem         `json:"item,omitempty"`
}

type QuestionnaireEnableWhen struct {
	Question      string  `json:"question"`
	Operator      string  `json:"operator"`
	AnswerString  *string `json:"answerString,omitempty"`
	AnswerInteger *int    `json:"answerInteger,omitempty"`
	AnswerBoolean *bool   `json:"answerBoolean,omitempty"`
}

type QuestionnaireAnswerOption struct {
	ValueString     *string    `json:"valueString,omitempty"`
	ValueInteger    *int       `json:"valueInteger,omitempty"`
	ValueDate       *string    `json:"valueDate,omitempty"`
	ValueCoding     *Coding    `json:"valueCoding,omitempty"`
	ValueReference  *Reference `json:"valueReference,omitempty"`
	InitialSelected bool       `json:"initialSelected,omitempty"`
}

type QuestionnaireInitial struct {
	ValueString    *string    `json:"valueString,omitempty"`
	ValueBoolean   *bool      `json:"valueBoolean,omitempty"`
	ValueInteger   *int       `json:"valueInteger,omitempty"`
	ValueDate      *string    `json:"valueDate,omitempty"`
	ValueCoding    *Coding    `json:"valueCoding,omitempty"`
	ValueReference *Reference `json:"valueReference,omitempty"`
}
