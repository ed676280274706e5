package fhir_dto

type Reference struct {
	Reference  string      `json:"reference,omitempty" mapstructure:"reference"`
	Type       string      `json:"type,omitempty" mapstructure:"type"`
	Identifier *Identifier `json:"identifier,omitempty" mapstructure:"identifier"`
	Display    string      `json:"display,omitempty" mapstructure:"display"`
}

type Identifier struct {
	Use    string `json:"use,omitempty" mapstructure:"use"`
	System string `json:"system,omitempty" mapstructure:"system"`
	Value  string `json:"value,omitempty" mapstructure:"value"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty" mapstructure:"coding"`
	Text   string   `json:"text,omitempty" mapstructure:"text"`
}

type Coding struct {
	System  string `json:"system,omitempty" mapstructure:"system"`
	Version string `json:"version,omitempty" mapstructure:"version"`
	Code    string `json:"code,omitempty" mapstructure:"code"`
	Display string `json:"display,omitempty" mapstructure:"display"`
}

type Meta struct {
	VersionId   string   `json:"versionId,omitempty"`
	LastUpdated string   `json:"lastUpdated,omitempty"`
	Source      string   `json:"source,omitempty"`
	Profile     []string `json:"profile,omitempty"`
	Tag         []Coding `json:"tag,omitempty"`
}

type Attachment struct {
	ContentType string `json:"contentType,omitempty" mapstructure:"contentType"`
	Language    string `json:"language,omitempty" mapstructure:"language"`
	Data        string `json:"data,omitempty" mapstructure:"data"`
	Url         string `json:"url,omitempty" mapstructure:"url"`
	Size        int64  `json:"size,omitempty" mapstructure:"size"`
	Title       string `json:"title,omitempty" mapstructure:"title"`
}

type Quantity struct {
	Value      float64 `json:"value,omitempty" mapstructure:"value"`
	Comparator string  `json:"comparator,omitempty" mapstructure:"comparator"`
	Unit       string  `json:"unit,omitempty" mapstructure:"unit"`
	System     string  `json:"system,omitempty" mapstructure:"system"`
	Code       string  `json:"code,omitempty" mapstructure:"code"`
}

type Extension struct {
	Url                  string           `json:"url,omitempty" mapstructure:"url"`
	ValueString          string           `json:"valueString,omitempty" mapstructure:"valueString"`
	ValueCode            string           `json:"valueCode,omitempty" mapstructure:"valueCode"`
	ValueBoolean         *bool            `json:"valueBoolean,omitempty" mapstructure:"valueBoolean"`
	ValueInteger         *int             `json:"valueInteger,omitempty" mapstructure:"valueInteger"`
	ValueCoding          *Coding          `json:"valueCoding,omitempty" mapstructure:"valueCoding"`
	ValueCodeableConcept *CodeableConcept `json:"valueCodeableConcept,omitempty" mapstructure:"valueCodeableConcept"`
	ValueReference       *Reference       `json:"valueReference,omitempty" mapstructure:"valueReference"`
	Extension            []Extension      `json:"extension,omitempty" mapstructure:"extension"`
}

type OperationOutcome struct {
	ResourceType string                  `json:"resourceType"`
	Issue        []OperationOutcomeIssue `json:"issue"`
}

type OperationOutcomeIssue struct {
	Severity    string `json:"severity"`
	Code        string `json:"code,omitempty"`
	Diagnostics string `json:"diagnostics"`
}
