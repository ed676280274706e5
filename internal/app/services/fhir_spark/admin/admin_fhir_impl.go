package admin

import (
	"context"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

type createBotRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type adminFhirClient struct {
	AdminUrl  string
	Requester *fhirhttp.Requester
	Log       *zap.Logger
}

// NewAdminFhirClient talks to the project administration api rooted at adminUrl.
func NewAdminFhirClient(adminUrl string, requester *fhirhttp.Requester, logger *zap.Logger) contracts.AdminFhirClient {
	return &adminFhirClient{
		AdminUrl:  adminUrl,
		Requester: requester,
		Log:       logger,
	}
}

func (c *adminFhirClient) CreateBot(ctx context.Context, projectID, name, description string) (*fhir_dto.Bot, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adminFhirClient.CreateBot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBotNameKey, name),
	)

	bot := new(fhir_dto.Bot)
	err := c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      fhirhttp.ResourceUrl(c.AdminUrl, "projects", projectID, "bot"),
		Resource: constvars.ResourceBot,
		Body:     createBotRequest{Name: name, Description: description},
		Result:   bot,
		Wrap:     exceptions.ErrCreateFHIRResource,
	})
	if err != nil {
		return nil, err
	}

	c.Log.Info("adminFhirClient.CreateBot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, bot.ID),
	)
	return bot, nil
}

func (c *adminFhirClient) UpdateProjectMembership(ctx context.Context, projectID string, membership *fhir_dto.ProjectMembership) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("adminFhirClient.UpdateProjectMembership called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, membership.ID),
	)

	return c.Requester.Do(ctx, fhirhttp.Call{
		Method:   constvars.MethodPost,
		Url:      fhirhttp.ResourceUrl(c.AdminUrl, "projects", projectID, "members", membership.ID),
		Resource: constvars.ResourceProjectMembership,
		Body:     membership,
		Wrap:     exceptions.ErrUpdateFHIRResource,
	})
}
