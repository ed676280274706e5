package questionnaire_responses

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"questionnaire-service/internal/app/services/fhir_spark/fhirhttp"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/fhir_dto"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQuestionnaireResponseFhirClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/QuestionnaireResponse":
			assert.Equal(t, "Patient/1", r.URL.Query().Get("subject"))
			assert.Equal(t, "Questionnaire/intake", r.URL.Query().Get("questionnaire"))
			w.Write([]byte(`{"resourceType":"Bundle","entry":[{"resource":{"resourceType":"QuestionnaireResponse","id":"qr-1","status":"in-progress"}}]}`))
		case r.Method == http.MethodPost && r.URL.Path == "/QuestionnaireResponse":
			body, _ := io.ReadAll(r.Body)
			var response fhir_dto.QuestionnaireResponse
			require.NoError(t, json.Unmarshal(body, &response))
			response.ID = "created"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(response)
		case r.Method == http.MethodPut && r.URL.Path == "/QuestionnaireResponse/qr-1":
			body, _ := io.ReadAll(r.Body)
			w.Write(body)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewQuestionnaireResponseFhirClient(server.URL, fhirhttp.NewRequester(nil, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	t.Run("find by subject and questionnaire", func(t *testing.T) {
		responses, err := client.FindQuestionnaireResponses(ctx, "Patient/1", "intake")
		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, "qr-1", responses[0].ID)
	})

	t.Run("create posts the resource", func(t *testing.T) {
		created, err := client.CreateQuestionnaireResponse(ctx, &fhir_dto.QuestionnaireResponse{
			ResourceType: constvars.ResourceQuestionnaireResponse,
			Status:       constvars.FhirQuestionnaireResponseStatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, "created", created.ID)
	})

	t.Run("update puts by id", func(t *testing.T) {
		updated, err := client.UpdateQuestionnaireResponse(ctx, &fhir_dto.QuestionnaireResponse{
			ResourceType: constvars.ResourceQuestionnaireResponse,
			ID:           "qr-1",
			Status:       constvars.FhirQuestionnaireResponseStatusInProgress,
		})
		require.NoError(t, err)
		assert.Equal(t, "qr-1", updated.ID)
	})

	t.Run("update without id fails", func(t *testing.T) {
		_, err := client.UpdateQuestionnaireResponse(ctx, &fhir_dto.QuestionnaireResponse{})
		assert.Error(t, err)
	})
}
