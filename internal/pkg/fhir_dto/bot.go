package fhir_dto

type Bot struct {
	ResourceType   string      `json:"resourceType"`
	ID             string      `json:"id,omitempty"`
	Meta           *Meta       `json:"meta,omitempty"`
	Name           string      `json:"name,omitempty"`
	Description    string      `json:"description,omitempty"`
	RuntimeVersion string      `json:"runtimeVersion,omitempty"`
	SourceCode     *Attachment `json:"sourceCode,omitempty"`
	ExecutableCode *Attachment `json:"executableCode,omitempty"`
	Extension      []Extension `json:"extension,omitempty"`
}

type Subscription struct {
	ResourceType string              `json:"resourceType"`
	ID           string              `json:"id,omitempty"`
	Status       string              `json:"status"`
	Reason       string              `json:"reason,omitempty"`
	Criteria     string              `json:"criteria"`
	Channel      SubscriptionChannel `json:"channel"`
	Extension    []Extension         `json:"extension,omitempty"`
}

type SubscriptionChannel struct {
	Type     string `json:"type"`
	Endpoint string `json:"endpoint,omitempty"`
	Payload  string `json:"payload,omitempty"`
}

type ProjectMembership struct {
	ResourceType string     `json:"resourceType"`
	ID           string     `json:"id,omitempty"`
	Project      *Reference `json:"project,omitempty"`
	Profile      *Reference `json:"profile,omitempty"`
	User         *Reference `json:"user,omitempty"`
	AccessPolicy *Reference `json:"accessPolicy,omitempty"`
	Admin        bool       `json:"admin"`
}

type Binary struct {
	ResourceType string `json:"resourceType"`
	ID           string `json:"id,omitempty"`
	ContentType  string `json:"contentType"`
	Data         string `json:"data"`
}
