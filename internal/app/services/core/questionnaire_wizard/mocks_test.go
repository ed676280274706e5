package questionnaire_wizard

import (
	"context"
	"fmt"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

type fakeFhirServer struct {
	mu             sync.Mutex
	questionnaires map[string]fhir_dto.Questionnaire
	responses      map[string]fhir_dto.QuestionnaireResponse
	nextID         int
	creates        int
	updates        int
}

func newFakeFhirServer(questionnaires ...fhir_dto.Questionnaire) *fakeFhirServer {
	server := &fakeFhirServer{
		questionnaires: map[string]fhir_dto.Questionnaire{},
		responses:      map[string]fhir_dto.QuestionnaireResponse{},
	}
	for _, q := range questionnaires {
		server.questionnaires[q.Url] = q
	}
	return server
}

func (f *fakeFhirServer) FindQuestionnaireByURL(ctx context.Context, url string) (*fhir_dto.Questionnaire, error) {
	q, ok := f.questionnaires[url]
	if !ok {
		return nil, exceptions.ErrQuestionnaireNotFound(fmt.Errorf("empty searchset"), url)
	}
	return &q, nil
}

func (f *fakeFhirServer) FindQuestionnaireByID(ctx context.Context, questionnaireID string) (*fhir_dto.Questionnaire, error) {
	for _, q := range f.questionnaires {
		if q.ID == questionnaireID {
			return &q, nil
		}
	}
	return nil, exceptions.ErrFHIRResourceNotFound(nil, constvars.ResourceQuestionnaire)
}

func (f *fakeFhirServer) FindQuestionnairesByName(ctx context.Context, name string) ([]fhir_dto.Questionnaire, error) {
	return nil, nil
}

func (f *fakeFhirServer) FindQuestionnaireResponses(ctx context.Context, subject, questionnaireID string) ([]fhir_dto.QuestionnaireResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []fhir_dto.QuestionnaireResponse
	for _, response := range f.responses {
		if response.Subject != nil && response.Subject.Reference == subject && response.Questionnaire == constvars.ResourceQuestionnaire+"/"+questionnaireID {
			result = append(result, response)
		}
	}
	return result, nil
}

func (f *fakeFhirServer) CreateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	f.creates++
	created := *request
	created.ID = fmt.Sprintf("qr-%d", f.nextID)
	f.responses[created.ID] = created
	return &created, nil
}

func (f *fakeFhirServer) UpdateQuestionnaireResponse(ctx context.Context, request *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updates++
	f.responses[request.ID] = *request
	updated := *request
	return &updated, nil
}

type memorySessionRepository struct {
	indexes map[string]int
}

func newMemorySessionRepository() *memorySessionRepository {
	return &memorySessionRepository{indexes: map[string]int{}}
}

func (m *memorySessionRepository) FindGroupIndex(ctx context.Context, subject, questionnaireID string) (*int, error) {
	index, ok := m.indexes[subject+"|"+questionnaireID]
	if !ok {
		return nil, nil
	}
	return &index, nil
}

func (m *memorySessionRepository) SaveGroupIndex(ctx context.Context, subject, questionnaireID string, groupIndex int) error {
	m.indexes[subject+"|"+questionnaireID] = groupIndex
	return nil
}

func (m *memorySessionRepository) DeleteGroupIndex(ctx context.Context, subject, questionnaireID string) error {
	delete(m.indexes, subject+"|"+questionnaireID)
	return nil
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	args := m.Called(ctx, eventType, payload)
	return args.Error(0)
}
