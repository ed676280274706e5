package bots

import (
	"context"
	"encoding/base64"
	"net/url"
	"os"
	"path/filepath"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockResourceFhirClient struct {
	mock.Mock
}

func (m *MockResourceFhirClient) Search(ctx context.Context, resourceType string, params url.Values) ([]json.RawMessage, error) {
	args := m.Called(ctx, resourceType, params)
	resources, _ := args.Get(0).([]json.RawMessage)
	return resources, args.Error(1)
}

func (m *MockResourceFhirClient) SearchOne(ctx context.Context, resourceType string, params url.Values) (json.RawMessage, error) {
	args := m.Called(ctx, resourceType, params)
	resource, _ := args.Get(0).(json.RawMessage)
	return resource, args.Error(1)
}

func (m *MockResourceFhirClient) CreateResource(ctx context.Context, resourceType string, resource json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, resourceType, resource)
	created, _ := args.Get(0).(json.RawMessage)
	return created, args.Error(1)
}

func (m *MockResourceFhirClient) Post(ctx context.Context, path string, body any, result any) error {
	args := m.Called(ctx, path, body, result)
	return args.Error(0)
}

type MockAdminFhirClient struct {
	mock.Mock
}

func (m *MockAdminFhirClient) CreateBot(ctx context.Context, projectID, name, description string) (*fhir_dto.Bot, error) {
	args := m.Called(ctx, projectID, name, description)
	bot, _ := args.Get(0).(*fhir_dto.Bot)
	return bot, args.Error(1)
}

func (m *MockAdminFhirClient) UpdateProjectMembership(ctx context.Context, projectID string, membership *fhir_dto.ProjectMembership) error {
	args := m.Called(ctx, projectID, membership)
	return args.Error(0)
}

type MockBundleFhirClient struct {
	mock.Mock
}

func (m *MockBundleFhirClient) PostBundle(ctx context.Context, bundle any) (*fhir_dto.FHIRBundle, error) {
	args := m.Called(ctx, bundle)
	result, _ := args.Get(0).(*fhir_dto.FHIRBundle)
	return result, args.Error(1)
}

type MockQuestionnaireFhirClient struct {
	mock.Mock
}

func (m *MockQuestionnaireFhirClient) FindQuestionnaireByURL(ctx context.Context, url string) (*fhir_dto.Questionnaire, error) {
	args := m.Called(ctx, url)
	q, _ := args.Get(0).(*fhir_dto.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireFhirClient) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error) {
	args := m.Called(ctx, questionnaireID)
	q, _ := args.Get(0).(*fhir_dto.Questionnaire)
	return q, args.Error(1)
}

func (m *MockQuestionnaireFhirClient) FindQuestionnairesByName(ctx context.Context, name string) ([]fhir_dto.Questionnaire, error) {
	args := m.Called(ctx, name)
	qs, _ := args.Get(0).([]fhir_dto.Questionnaire)
	return qs, args.Error(1)
}

func writeBotFiles(t *testing.T, name string) (string, string) {
	t.Helper()

	srcDir := filepath.Join(t.TempDir(), "src")
	distDir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, os.MkdirAll(srcDir, 0o755))
	require.NoError(t, os.MkdirAll(distDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, name+".ts"), []byte("export const handler = 1;"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(distDir, name+".js"), []byte("exports.handler = 1;"), 0o644))
	return srcDir, distDir
}

func okBundle(entries int) *fhir_dto.FHIRBundle {
	bundle := &fhir_dto.FHIRBundle{ResourceType: constvars.ResourceBundle, Type: "transaction-response"}
	for i := 0; i < entries; i++ {
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{
			Response: &fhir_dto.BundleEntryResponse{Status: "201 Created"},
		})
	}
	return bundle
}

func TestBotDeployerUsecase_DeployBots(t *testing.T) {
	ctx := context.Background()
	const botName = "care-team-bot"
	srcDir, distDir := writeBotFiles(t, botName)

	request := &requests.DeployBots{
		Bots: []requests.BotDescription{{
			Name:                 botName,
			Criteria:             "QuestionnaireResponse?questionnaire=$intake",
			NeedsAdminMembership: true,
			Questionnaires:       []string{"intake"},
			Extension: []map[string]any{{
				"url":       "https://medplum.com/fhir/StructureDefinition/subscription-supported-interaction",
				"valueCode": "create",
			}},
		}},
		SourceDir: srcDir,
		DistDir:   distDir,
		ProjectID: "project-1",
	}

	t.Run("creates missing bot, syncs membership and deploys", func(t *testing.T) {
		resources := new(MockResourceFhirClient)
		admin := new(MockAdminFhirClient)
		bundles := new(MockBundleFhirClient)
		questionnaires := new(MockQuestionnaireFhirClient)

		questionnaires.On("FindQuestionnairesByName", ctx, "intake").
			Return([]fhir_dto.Questionnaire{{ID: "q-42", Name: "intake"}}, nil)
		resources.On("SearchOne", ctx, constvars.ResourceBot, url.Values{"name": {botName}}).Return(nil, nil)
		admin.On("CreateBot", ctx, "project-1", botName, "").
			Return(&fhir_dto.Bot{ResourceType: constvars.ResourceBot, ID: "bot-7", Name: botName}, nil)
		resources.On("SearchOne", ctx, constvars.ResourceProjectMembership, url.Values{"user": {"Bot/bot-7"}}).
			Return(json.RawMessage(`{"resourceType":"ProjectMembership","id":"pm-1","admin":false}`), nil)
		admin.On("UpdateProjectMembership", ctx, "project-1", mock.MatchedBy(func(m *fhir_dto.ProjectMembership) bool {
			return m.ID == "pm-1" && m.Admin
		})).Return(nil)

		var posted string
		bundles.On("PostBundle", ctx, mock.AnythingOfType("json.RawMessage")).
			Run(func(args mock.Arguments) { posted = string(args.Get(1).(json.RawMessage)) }).
			Return(okBundle(4), nil)
		resources.On("Post", ctx, "Bot/bot-7/$deploy", map[string]string{"code": "exports.handler = 1;"}, nil).Return(nil)

		uc := NewBotDeployerUsecase(resources, admin, bundles, questionnaires, zap.NewNop())
		deployed, err := uc.DeployBots(ctx, request)

		require.NoError(t, err)
		require.Len(t, deployed, 1)
		assert.Equal(t, "bot-7", deployed[0].ID)

		assert.NotContains(t, posted, "$bot-")
		assert.NotContains(t, posted, "$intake")
		assert.Contains(t, posted, `"url":"Bot/bot-7"`)
		assert.Contains(t, posted, `"id":"bot-7"`)
		assert.Contains(t, posted, "Subscription?url=Bot/bot-7")
		assert.Contains(t, posted, "questionnaire=Questionnaire/q-42")
		assert.Contains(t, posted, "subscription-supported-interaction")

		var bundle fhir_dto.FHIRBundle
		require.NoError(t, json.Unmarshal([]byte(posted), &bundle))
		require.Len(t, bundle.Entry, 4)
		var binary fhir_dto.Binary
		require.NoError(t, json.Unmarshal(bundle.Entry[1].Resource, &binary))
		decoded, err := base64.StdEncoding.DecodeString(binary.Data)
		require.NoError(t, err)
		assert.Equal(t, "exports.handler = 1;", string(decoded))
		assert.True(t, strings.HasPrefix(bundle.Entry[0].FullUrl, "urn:uuid:"))

		resources.AssertExpectations(t)
		admin.AssertExpectations(t)
		bundles.AssertExpectations(t)
	})

	t.Run("failed bundle entry stops before deploying", func(t *testing.T) {
		resources := new(MockResourceFhirClient)
		admin := new(MockAdminFhirClient)
		bundles := new(MockBundleFhirClient)
		questionnaires := new(MockQuestionnaireFhirClient)

		questionnaires.On("FindQuestionnairesByName", ctx, "intake").Return([]fhir_dto.Questionnaire{}, nil)
		resources.On("SearchOne", ctx, constvars.ResourceBot, mock.Anything).
			Return(json.RawMessage(`{"resourceType":"Bot","id":"bot-7","name":"care-team-bot"}`), nil)
		resources.On("SearchOne", ctx, constvars.ResourceProjectMembership, mock.Anything).
			Return(json.RawMessage(`{"resourceType":"ProjectMembership","id":"pm-1","admin":true}`), nil)

		result := okBundle(4)
		result.Entry[2].Response.Status = "400 Bad Request"
		bundles.On("PostBundle", ctx, mock.Anything).Return(result, nil)

		uc := NewBotDeployerUsecase(resources, admin, bundles, questionnaires, zap.NewNop())
		_, err := uc.DeployBots(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "bundle entry 2")
		admin.AssertNotCalled(t, "CreateBot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		admin.AssertNotCalled(t, "UpdateProjectMembership", mock.Anything, mock.Anything, mock.Anything)
		resources.AssertNotCalled(t, "Post", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing bot files", func(t *testing.T) {
		uc := NewBotDeployerUsecase(new(MockResourceFhirClient), new(MockAdminFhirClient), new(MockBundleFhirClient), new(MockQuestionnaireFhirClient), zap.NewNop())
		_, err := uc.DeployBots(ctx, &requests.DeployBots{
			Bots:      []requests.BotDescription{{Name: "missing"}},
			SourceDir: t.TempDir(),
			DistDir:   t.TempDir(),
			ProjectID: "project-1",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Contains(t, customErr.DevMessage, "missing.ts")
	})
}

func TestLoadBotDescriptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bots.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
bots:
  - name: care-team-member-access-policy-bot
    criteria: CareTeam
    needs_admin_membership: true
    questionnaires: [intake]
    extension:
      - url: https://example.org/ext
        valueCode: create
`), 0o644))

	descriptions, err := LoadBotDescriptions(path)

	require.NoError(t, err)
	require.Len(t, descriptions, 1)
	assert.Equal(t, "care-team-member-access-policy-bot", descriptions[0].Name)
	assert.Equal(t, "CareTeam", descriptions[0].Criteria)
	assert.True(t, descriptions[0].NeedsAdminMembership)
	assert.Equal(t, []string{"intake"}, descriptions[0].Questionnaires)
	assert.Equal(t, "create", descriptions[0].Extension[0]["valueCode"])
}
