package notifications

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

type NotificationController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	NotificationUsecase NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, internalConfig *config.InternalConfig, notificationUsecase NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) sessionData(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return "", false
	}
	return sessionData, true
}

func (ctrl *NotificationController) ListMyNotifications(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("NotificationController.ListMyNotifications called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.NotificationUsecase.ListMyNotifications(ctx, sessionData, unreadOnly)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccess, result)
}

func (ctrl *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("NotificationController.MarkRead called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}
	notificationID := chi.URLParam(r, "notificationID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.NotificationUsecase.MarkRead(ctx, sessionData, notificationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkNotificationSuccess, nil)
}

func (ctrl *NotificationController) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("NotificationController.MarkAllRead called")

	sessionData, ok := ctrl.sessionData(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.NotificationUsecase.MarkAllRead(ctx, sessionData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MarkAllNotificationSuccess, nil)
}
