package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Authenticate).Get("/", notificationController.ListMyNotifications)
	router.With(middlewares.Authenticate).Put("/{notificationID}/read", notificationController.MarkRead)
	router.With(middlewares.Authenticate).Put("/read-all", notificationController.MarkAllRead)
}
