package questionnaire_wizard

import (
	"context"
	"errors"
	"net/http"
	"questionnaire-service/internal/app/config"
	"questionnaire-service/internal/app/contracts"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/dto/requests"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireWizardController struct {
	Log                        *zap.Logger
	QuestionnaireWizardUsecase contracts.QuestionnaireWizardUsecase
	InternalConfig             *config.InternalConfig
}

func NewQuestionnaireWizardController(logger *zap.Logger, questionnaireWizardUsecase contracts.QuestionnaireWizardUsecase, internalConfig *config.InternalConfig) *QuestionnaireWizardController {
	return &QuestionnaireWizardController{
		Log:                        logger,
		QuestionnaireWizardUsecase: questionnaireWizardUsecase,
		InternalConfig:             internalConfig,
	}
}

func (ctrl *QuestionnaireWizardController) StartSession(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartQuestionnaireSession)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Subject = utils.GetSubject(r.Context())

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.QuestionnaireWizardUsecase.StartSession(ctx, request)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSessionStarted, response)
}

func (ctrl *QuestionnaireWizardController) SubmitGroup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitQuestionnaireGroup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Subject = utils.GetSubject(r.Context())

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.QuestionnaireWizardUsecase.SubmitGroup(ctx, request)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseGroupSubmitted, response)
}

func (ctrl *QuestionnaireWizardController) PreviousGroup(w http.ResponseWriter, r *http.Request) {
	request := new(requests.PreviousQuestionnaireGroup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Subject = utils.GetSubject(r.Context())

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	response, err := ctrl.QuestionnaireWizardUsecase.PreviousGroup(ctx, request)
	if err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseMovedToPreviousGroup, response)
}

func (ctrl *QuestionnaireWizardController) ResetSession(w http.ResponseWriter, r *http.Request) {
	request := &requests.ResetQuestionnaireSession{
		QuestionnaireURL: r.URL.Query().Get(constvars.QueryParamQuestionnaireURL),
		Subject:          utils.GetSubject(r.Context()),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.QueryParamQuestionnaireURL))
		return
	}

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	if err := ctrl.QuestionnaireWizardUsecase.ResetSession(ctx, request); err != nil {
		ctrl.buildUsecaseError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSessionReset, nil)
}

func (ctrl *QuestionnaireWizardController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	return context.WithTimeout(r.Context(), timeout)
}

func (ctrl *QuestionnaireWizardController) buildUsecaseError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
