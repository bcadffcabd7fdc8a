package slots

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SlotController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	SlotUsecase    SlotUsecase
}

func NewSlotController(logger *zap.Logger, internalConfig *config.InternalConfig, slotUsecase SlotUsecase) *SlotController {
	return &SlotController{
		Log:            logger,
		InternalConfig: internalConfig,
		SlotUsecase:    slotUsecase,
	}
}

func (ctrl *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("SlotController.CreateSlot called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.CreateTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.CreateSlot(ctx, sessionData, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSlotSuccess, result)
}

func (ctrl *SlotController) ListDoctorSlots(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("SlotController.ListDoctorSlots called")

	doctorID := chi.URLParam(r, "doctorID")
	status := r.URL.Query().Get("status")
	date := r.URL.Query().Get("date")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.ListDoctorSlots(ctx, doctorID, status, date)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccess, result)
}

func (ctrl *SlotController) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("SlotController.UpdateSlot called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	slotID := chi.URLParam(r, "slotID")

	request := new(requests.UpdateTimeSlot)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SlotUsecase.UpdateSlot(ctx, sessionData, slotID, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSlotSuccess, result)
}

func (ctrl *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("SlotController.DeleteSlot called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	slotID := chi.URLParam(r, "slotID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.SlotUsecase.DeleteSlot(ctx, sessionData, slotID); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSlotSuccess, nil)
}
