package doctors

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	DoctorUsecase  DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, internalConfig *config.InternalConfig, doctorUsecase DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:            logger,
		InternalConfig: internalConfig,
		DoctorUsecase:  doctorUsecase,
	}
}

func (ctrl *DoctorController) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("DoctorController.ListDoctors called")

	specialty := utils.SanitizeString(r.URL.Query().Get("specialty"))
	search := utils.SanitizeString(r.URL.Query().Get("search"))
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.DoctorUsecase.ListDoctors(ctx, specialty, search, page, pageSize)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccess, pagination, result)
}

func (ctrl *DoctorController) GetDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("DoctorController.GetDoctor called")

	doctorID := chi.URLParam(r, "doctorID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DoctorUsecase.GetDoctor(ctx, doctorID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccess, result)
}
