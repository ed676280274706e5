package bots

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/utils"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type botDeployerUsecase struct {
	ResourceFhirClient      contracts.ResourceFhirClient
	AdminFhirClient         contracts.AdminFhirClient
	BundleFhirClient        contracts.BundleFhirClient
	QuestionnaireFhirClient contracts.QuestionnaireFhirClient
	Log                     *zap.Logger
}

func NewBotDeployerUsecase(
	resourceFhirClient contracts.ResourceFhirClient,
	adminFhirClient contracts.AdminFhirClient,
	bundleFhirClient contracts.BundleFhirClient,
	questionnaireFhirClient contracts.QuestionnaireFhirClient,
	logger *zap.Logger,
) contracts.BotDeployerUsecase {
	return &botDeployerUsecase{
		ResourceFhirClient:      resourceFhirClient,
		AdminFhirClient:         adminFhirClient,
		BundleFhirClient:        bundleFhirClient,
		QuestionnaireFhirClient: questionnaireFhirClient,
		Log:                     logger,
	}
}

// DeployBots uploads the code of every bot in one transaction and then
// deploys it. Bots missing on the server are created first, so that the
// bundle can PUT them by id.
func (uc *botDeployerUsecase) DeployBots(ctx context.Context, request *requests.DeployBots) ([]responses.DeployedBot, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	questionnaires, err := uc.linkedQuestionnaires(ctx, request.Bots)
	if err != nil {
		return nil, err
	}

	bundle, err := buildBotBundle(request.Bots, request.SourceDir, request.DistDir)
	if err != nil {
		return nil, err
	}

	transaction, err := json.Marshal(bundle.Bundle)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	deployed := make([]responses.DeployedBot, 0, len(request.Bots))
	replacements := make([]string, 0, 4*len(request.Bots)+2*len(questionnaires))
	for _, description := range request.Bots {
		bot, err := uc.ensureBot(ctx, request.ProjectID, description)
		if err != nil {
			return nil, err
		}

		if err := uc.syncMembership(ctx, request.ProjectID, bot, description.NeedsAdminMembership); err != nil {
			return nil, err
		}

		replacements = append(replacements,
			referencePlaceholder(description.Name), utils.BuildReference(constvars.ResourceBot, bot.ID).Reference,
			idPlaceholder(description.Name), bot.ID,
		)
		deployed = append(deployed, responses.DeployedBot{Name: description.Name, ID: bot.ID})
	}
	for _, questionnaire := range questionnaires {
		replacements = append(replacements,
			fmt.Sprintf(constvars.FhirQuestionnaireToken, questionnaire.Name),
			utils.BuildReference(constvars.ResourceQuestionnaire, questionnaire.ID).Reference,
		)
	}

	transaction = []byte(strings.NewReplacer(replacements...).Replace(string(transaction)))

	uc.Log.Info("botDeployerUsecase.DeployBots uploading bots bundle",
		zap.Int(constvars.LoggingCountKey, len(bundle.Bundle.Entry)),
	)
	result, err := uc.BundleFhirClient.PostBundle(ctx, json.RawMessage(transaction))
	if err != nil {
		return nil, err
	}
	if err := checkEntryStatuses(result); err != nil {
		return nil, err
	}

	for _, bot := range deployed {
		code, ok := bundle.Code[bot.Name]
		if !ok {
			return nil, exceptions.ErrBotBinaryMissing(nil, bot.Name)
		}

		uc.Log.Info("botDeployerUsecase.DeployBots deploying bot",
			zap.String(constvars.LoggingBotNameKey, bot.Name),
			zap.String(constvars.LoggingResourceIDKey, bot.ID),
		)
		deployPath := strings.Join([]string{constvars.ResourceBot, bot.ID, constvars.FhirOperationDeploy}, "/")
		if err := uc.ResourceFhirClient.Post(ctx, deployPath, map[string]string{"code": code}, nil); err != nil {
			return nil, err
		}
	}

	return deployed, nil
}

func (uc *botDeployerUsecase) linkedQuestionnaires(ctx context.Context, descriptions []requests.BotDescription) ([]fhir_dto.Questionnaire, error) {
	seen := make(map[string]bool)
	var names []string
	for _, description := range descriptions {
		for _, name := range description.Questionnaires {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	return uc.QuestionnaireFhirClient.FindQuestionnairesByName(ctx, strings.Join(names, ","))
}

func (uc *botDeployerUsecase) ensureBot(ctx context.Context, projectID string, description requests.BotDescription) (*fhir_dto.Bot, error) {
	raw, err := uc.ResourceFhirClient.SearchOne(ctx, constvars.ResourceBot, url.Values{
		constvars.FhirSearchParamName: {description.Name},
	})
	if err != nil {
		return nil, err
	}

	if raw != nil {
		bot := new(fhir_dto.Bot)
		if err := json.Unmarshal(raw, bot); err != nil {
			return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceBot)
		}
		return bot, nil
	}

	uc.Log.Info("botDeployerUsecase.ensureBot creating bot",
		zap.String(constvars.LoggingBotNameKey, description.Name),
	)
	return uc.AdminFhirClient.CreateBot(ctx, projectID, description.Name, description.Description)
}

func (uc *botDeployerUsecase) syncMembership(ctx context.Context, projectID string, bot *fhir_dto.Bot, admin bool) error {
	raw, err := uc.ResourceFhirClient.SearchOne(ctx, constvars.ResourceProjectMembership, url.Values{
		constvars.FhirSearchParamUser: {utils.BuildReference(constvars.ResourceBot, bot.ID).Reference},
	})
	if err != nil || raw == nil {
		return err
	}

	membership := new(fhir_dto.ProjectMembership)
	if err := json.Unmarshal(raw, membership); err != nil {
		return exceptions.ErrDecodeResponse(err, constvars.ResourceProjectMembership)
	}
	if membership.Admin == admin {
		return nil
	}

	membership.Admin = admin
	return uc.AdminFhirClient.UpdateProjectMembership(ctx, projectID, membership)
}

func checkEntryStatuses(bundle *fhir_dto.FHIRBundle) error {
	if bundle == nil {
		return nil
	}
	for i, entry := range bundle.Entry {
		status, outcome := "", "no response"
		if entry.Response != nil {
			status = entry.Response.Status
			outcome = string(entry.Response.Outcome)
		}
		if code, _, _ := strings.Cut(status, " "); code != "200" && code != "201" {
			return exceptions.ErrBundleEntryFailed(errors.New(outcome), i, status)
		}
	}
	return nil
}
