package prescriptions

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PrescriptionController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	PrescriptionUsecase PrescriptionUsecase
}

func NewPrescriptionController(logger *zap.Logger, internalConfig *config.InternalConfig, prescriptionUsecase PrescriptionUsecase) *PrescriptionController {
	return &PrescriptionController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		PrescriptionUsecase: prescriptionUsecase,
	}
}

func (ctrl *PrescriptionController) ListMyPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("PrescriptionController.ListMyPrescriptions called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PrescriptionUsecase.ListMyPrescriptions(ctx, sessionData)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPrescriptionsSuccess, result)
}
