package valuesets

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

	"go.uber.org/zap"
)

type ValueSetController struct {
	Log             *zap.Logger
	ValueSetUsecase contracts.ValueSetUsecase
	InternalConfig  *config.InternalConfig
}

func NewValueSetController(logger *zap.Logger, valueSetUsecase contracts.ValueSetUsecase, internalConfig *config.InternalConfig) *ValueSetController {
	return &ValueSetController{
		Log:             logger,
		ValueSetUsecase: valueSetUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *ValueSetController) ExpandValueSet(w http.ResponseWriter, r *http.Request) {
	request := &requests.ExpandValueSet{
		Url:    r.URL.Query().Get(constvars.QueryParamURL),
		Filter: r.URL.Query().Get(constvars.QueryParamFilter),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.QueryParamURL))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	options, err := ctrl.ValueSetUsecase.ExpandValueSet(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseValueSetExpanded, options)
}
