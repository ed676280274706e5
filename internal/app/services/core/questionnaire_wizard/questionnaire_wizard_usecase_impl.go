package questionnaire_wizard

import (
	"context"
	"errors"
	"fmt"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/app/services/shared/metrics"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/dto/responses"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/fhir_dto"
	"questionnaire-service/internal/pkg/questionnaire"
	"questionnaire-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type questionnaireWizardUsecase struct {
	QuestionnaireFhirClient         contracts.QuestionnaireFhirClient
	QuestionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient
	SessionRepository               contracts.SessionRepository
	LockerService                   contracts.LockerService
	EventPublisher                  contracts.EventPublisher
	InternalConfig                  *config.InternalConfig
	Log                             *zap.Logger
}

func NewQuestionnaireWizardUsecase(
	questionnaireFhirClient contracts.QuestionnaireFhirClient,
	questionnaireResponseFhirClient contracts.QuestionnaireResponseFhirClient,
	sessionRepository contracts.SessionRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.QuestionnaireWizardUsecase {
	return &questionnaireWizardUsecase{
		QuestionnaireFhirClient:         questionnaireFhirClient,
		QuestionnaireResponseFhirClient: questionnaireResponseFhirClient,
		SessionRepository:               sessionRepository,
		LockerService:                   lockerService,
		EventPublisher:                  eventPublisher,
		InternalConfig:                  internalConfig,
		Log:                             logger,
	}
}

func (uc *questionnaireWizardUsecase) StartSession(ctx context.Context, request *requests.StartQuestionnaireSession) (*responses.QuestionnaireSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireWizardUsecase.StartSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, request.Subject),
		zap.String(constvars.LoggingQuestionnaireURLKey, request.QuestionnaireURL),
	)

	q, previous, err := uc.loadQuestionnaireAndResponse(ctx, request.QuestionnaireURL, request.Subject)
	if err != nil {
		return nil, err
	}

	override, err := uc.SessionRepository.FindGroupIndex(ctx, request.Subject, q.ID)
	if err != nil {
		uc.Log.Error("questionnaireWizardUsecase.StartSession error reading session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session := buildSession(q, previous, questionnaire.GroupInfoFor(q, previous, override))
	metrics.SessionsStarted.Inc()

	uc.Log.Info("questionnaireWizardUsecase.StartSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQuestionnaireKey, q.ID),
		zap.Int(constvars.LoggingGroupIndexKey, session.Navigation.GroupIndex),
	)
	return session, nil
}

// SubmitGroup validates and saves the answers of the active group, then moves
// the wizard forward. Concurrent submits for the same subject and
// questionnaire are refused.
func (uc *questionnaireWizardUsecase) SubmitGroup(ctx context.Context, request *requests.SubmitQuestionnaireGroup) (*responses.QuestionnaireSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireWizardUsecase.SubmitGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, request.Subject),
		zap.String(constvars.LoggingQuestionnaireURLKey, request.QuestionnaireURL),
		zap.Int(constvars.LoggingGroupIndexKey, request.GroupIndex),
	)

	lockKey := utils.GenerateSubmitLockKey(request.Subject, request.QuestionnaireURL)
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.InternalConfig.Questionnaire.SubmitLockTTL)
	if err != nil {
		metrics.GroupSubmits.WithLabelValues(metrics.OutcomeFailed).Inc()
		return nil, exceptions.ErrAcquireLock(err)
	}
	if !acquired {
		metrics.GroupSubmits.WithLabelValues(metrics.OutcomeConflict).Inc()
		return nil, exceptions.ErrSubmitInProgress(fmt.Errorf("lock %s is held", lockKey), lockKey)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("questionnaireWizardUsecase.SubmitGroup error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(unlockErr),
			)
		}
	}()

	session, err := uc.submitGroup(ctx, request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnprocessableEntity {
			metrics.GroupSubmits.WithLabelValues(metrics.OutcomeInvalid).Inc()
		} else {
			metrics.GroupSubmits.WithLabelValues(metrics.OutcomeFailed).Inc()
		}
		return nil, err
	}

	metrics.GroupSubmits.WithLabelValues(metrics.OutcomeSaved).Inc()
	return session, nil
}

func (uc *questionnaireWizardUsecase) submitGroup(ctx context.Context, request *requests.SubmitQuestionnaireGroup) (*responses.QuestionnaireSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	q, previous, err := uc.loadQuestionnaireAndResponse(ctx, request.QuestionnaireURL, request.Subject)
	if err != nil {
		return nil, err
	}

	info := questionnaire.GroupInfoFor(q, previous, &request.GroupIndex)
	items := q.Item
	if info.Enabled {
		items = info.CurrentGroup.Item
	}

	parsed, validationErrors := questionnaire.DeriveSchema(items).Parse(request.Values)
	if validationErrors != nil {
		uc.Log.Info("questionnaireWizardUsecase.SubmitGroup validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Any(constvars.LoggingErrorKey, validationErrors),
		)
		return nil, exceptions.ErrFormValidation(validationErrors)
	}

	subject := utils.SubjectReference(request.Subject)
	response := questionnaire.BuildResponse(q, parsed, subject, subject, previous)

	saved, err := uc.saveResponse(ctx, response, previous)
	if err != nil {
		return nil, err
	}

	uc.publishSaved(ctx, saved, request.Subject)

	next := info.GroupIndex
	if info.Enabled {
		next = questionnaire.Next(info.GroupIndex, info.GroupsCount)
		if err := uc.SessionRepository.SaveGroupIndex(ctx, request.Subject, q.ID, next); err != nil {
			uc.Log.Error("questionnaireWizardUsecase.SubmitGroup error saving session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("questionnaireWizardUsecase.SubmitGroup succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceIDKey, saved.ID),
		zap.Int(constvars.LoggingGroupIndexKey, next),
	)
	return buildSession(q, saved, questionnaire.GroupInfoFor(q, saved, &next)), nil
}

func (uc *questionnaireWizardUsecase) PreviousGroup(ctx context.Context, request *requests.PreviousQuestionnaireGroup) (*responses.QuestionnaireSession, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireWizardUsecase.PreviousGroup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, request.Subject),
		zap.Int(constvars.LoggingGroupIndexKey, request.GroupIndex),
	)

	q, previous, err := uc.loadQuestionnaireAndResponse(ctx, request.QuestionnaireURL, request.Subject)
	if err != nil {
		return nil, err
	}

	index := questionnaire.Previous(request.GroupIndex)
	if questionnaire.IsPureGroup(q) {
		if err := uc.SessionRepository.SaveGroupIndex(ctx, request.Subject, q.ID, index); err != nil {
			return nil, err
		}
	}

	return buildSession(q, previous, questionnaire.GroupInfoFor(q, previous, &index)), nil
}

func (uc *questionnaireWizardUsecase) ResetSession(ctx context.Context, request *requests.ResetQuestionnaireSession) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("questionnaireWizardUsecase.ResetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, request.Subject),
		zap.String(constvars.LoggingQuestionnaireURLKey, request.QuestionnaireURL),
	)

	q, err := uc.QuestionnaireFhirClient.FindQuestionnaireByURL(ctx, request.QuestionnaireURL)
	if err != nil {
		return err
	}

	return uc.SessionRepository.DeleteGroupIndex(ctx, request.Subject, q.ID)
}

// loadQuestionnaireAndResponse fetches the questionnaire and the subject's
// most recent response to it, which may be nil.
func (uc *questionnaireWizardUsecase) loadQuestionnaireAndResponse(ctx context.Context, questionnaireUrl, subject string) (*fhir_dto.Questionnaire, *fhir_dto.QuestionnaireResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	q, err := uc.QuestionnaireFhirClient.FindQuestionnaireByURL(ctx, questionnaireUrl)
	if err != nil {
		uc.Log.Error("questionnaireWizardUsecase.loadQuestionnaireAndResponse error fetching questionnaire",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	responses, err := uc.QuestionnaireResponseFhirClient.FindQuestionnaireResponses(ctx, subject, q.ID)
	if err != nil {
		uc.Log.Error("questionnaireWizardUsecase.loadQuestionnaireAndResponse error fetching responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	if len(responses) == 0 {
		return q, nil, nil
	}
	return q, &responses[0], nil
}

func (uc *questionnaireWizardUsecase) saveResponse(ctx context.Context, response, previous *fhir_dto.QuestionnaireResponse) (*fhir_dto.QuestionnaireResponse, error) {
	if previous != nil && previous.ID != "" {
		response.ID = previous.ID
		return uc.QuestionnaireResponseFhirClient.UpdateQuestionnaireResponse(ctx, response)
	}
	return uc.QuestionnaireResponseFhirClient.CreateQuestionnaireResponse(ctx, response)
}

// publishSaved announces the saved response. The response is already
// persisted, so a failure here is logged and not returned.
func (uc *questionnaireWizardUsecase) publishSaved(ctx context.Context, saved *fhir_dto.QuestionnaireResponse, subject string) {
	if uc.EventPublisher == nil {
		return
	}

	payload := map[string]string{
		"questionnaire_response_id": saved.ID,
		"questionnaire":             saved.Questionnaire,
		"subject":                   subject,
		"status":                    saved.Status,
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.EventQuestionnaireResponseSaved, payload); err != nil {
		uc.Log.Warn("questionnaireWizardUsecase.publishSaved error publishing event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}
