package appointments

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	AppointmentUsecase AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, internalConfig *config.InternalConfig, appointmentUsecase AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		InternalConfig:     internalConfig,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) sessionData(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return "", false
	}
	return sessionData, true
}

func (ctrl *AppointmentController) BookAppointment(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.BookAppointment called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}

	request := new(requests.BookAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Notes = utils.SanitizeString(request.Notes)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.BookAppointment(ctx, sessionData, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, result)
}

func (ctrl *AppointmentController) BookDirectAppointment(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.BookDirectAppointment called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}

	request := new(requests.BookDirectAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Notes = utils.SanitizeString(request.Notes)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.BookDirectAppointment(ctx, sessionData, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BookAppointmentSuccess, result)
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.ListAppointments called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}

	var statuses []string
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			statuses = append(statuses, strings.ToUpper(strings.TrimSpace(status)))
		}
	}
	var upcoming *bool
	if raw := r.URL.Query().Get("upcoming"); raw != "" {
		value := raw == "true"
		upcoming = &value
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.ListAppointments(ctx, sessionData, statuses, upcoming)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccess, result)
}

func (ctrl *AppointmentController) RespondAppointment(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.RespondAppointment called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.RespondAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Reason = utils.SanitizeString(request.Reason)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.RespondAppointment(ctx, sessionData, appointmentID, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RespondAppointmentSuccess, result)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.CancelAppointment called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, sessionData, appointmentID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccess, result)
}

func (ctrl *AppointmentController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.CompleteAppointment called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CompleteAppointment(ctx, sessionData, appointmentID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteAppointmentSuccess, result)
}

func (ctrl *AppointmentController) AddPrescription(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.AddPrescription called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	appointmentID := chi.URLParam(r, "appointmentID")

	request := new(requests.AddPrescription)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Text = utils.SanitizeString(request.Text)
	request.Notes = utils.SanitizeString(request.Notes)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.AddPrescription(ctx, sessionData, appointmentID, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddPrescriptionSuccess, result)
}
