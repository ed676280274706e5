package fhir_dto

type ValueSet struct {
	ResourceType string             `json:"resourceType"`
	ID           string             `json:"id,omitempty"`
	Url          string             `json:"url,omitempty"`
	Name         string             `json:"name,omitempty"`
	Status       string             `json:"status,omitempty"`
	Expansion    *ValueSetExpansion `json:"expansion,omitempty"`
}

type ValueSetExpansion struct {
	Total    int                `json:"total,omitempty"`
	Contains []ValueSetContains `json:"contains,omitempty"`
}

type ValueSetContains struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}
