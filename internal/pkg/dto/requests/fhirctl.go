package requests

// BotDescription is one entry of the bots file read by deploy-bots.
type BotDescription struct {
	Name                 string           `yaml:"name" validate:"required"`
	Description          string           `yaml:"description"`
	Criteria             string           `yaml:"criteria"`
	Extension            []map[string]any `yaml:"extension"`
	NeedsAdminMembership bool             `yaml:"needs_admin_membership"`
	Questionnaires       []string         `yaml:"questionnaires"`
}

type DeployBots struct {
	Bots      []BotDescription `yaml:"bots" validate:"required,min=1,dive"`
	SourceDir string           `yaml:"-" validate:"required"`
	DistDir   string           `yaml:"-" validate:"required"`
	ProjectID string           `yaml:"-" validate:"required"`
}
