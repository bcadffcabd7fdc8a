package routers

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/aichat"
	"carexpert-service/internal/app/services/core/appointments"
	"carexpert-service/internal/app/services/core/auth"
	"carexpert-service/internal/app/services/core/chat"
	"carexpert-service/internal/app/services/core/doctors"
	"carexpert-service/internal/app/services/core/notifications"
	"carexpert-service/internal/app/services/core/prescriptions"
	"carexpert-service/internal/app/services/core/reports"
	"carexpert-service/internal/app/services/core/slots"
	"carexpert-service/internal/app/services/core/users"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth         *auth.AuthController
	User         *users.UserController
	Doctor       *doctors.DoctorController
	Slot         *slots.SlotController
	Appointment  *appointments.AppointmentController
	Prescription *prescriptions.PrescriptionController
	Notification *notifications.NotificationController
	Chat         *chat.ChatController
	AiChat       *aichat.AiChatController
	Report       *reports.ReportController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Minute))
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.Recoverer)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, controllers.Auth)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, controllers.User)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, controllers.Doctor, controllers.Slot)
			})

			r.Route("/slots", func(r chi.Router) {
				attachSlotRoutes(r, middlewares, controllers.Slot)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, controllers.Appointment)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, controllers.Prescription)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, controllers.Notification)
			})

			r.Route("/chat", func(r chi.Router) {
				attachChatRoutes(r, middlewares, controllers.Chat)
			})

			r.Route("/ai-chat", func(r chi.Router) {
				attachAiChatRoutes(r, middlewares, controllers.AiChat)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, controllers.Report)
			})
		})
	})
}
