package bots

import (
	"os"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/exceptions"

	"gopkg.in/yaml.v3"
)

// LoadBotDescriptions reads a bots file of the form
//
//	bots:
//	  - name: care-team-member-access-policy-bot
//	    criteria: CareTeam
//	    needs_admin_membership: true
func LoadBotDescriptions(path string) ([]requests.BotDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exceptions.ErrReadBotFile(err, path)
	}

	file := new(requests.DeployBots)
	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, exceptions.ErrReadBotFile(err, path)
	}
	return file.Bots, nil
}
