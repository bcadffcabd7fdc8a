package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.With(middlewares.Authenticate).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.Authenticate).Post("/direct", appointmentController.BookDirectAppointment)
	router.With(middlewares.Authenticate).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.Authenticate).Post("/{appointmentID}/respond", appointmentController.RespondAppointment)
	router.With(middlewares.Authenticate).Post("/{appointmentID}/cancel", appointmentController.CancelAppointment)
	router.With(middlewares.Authenticate).Post("/{appointmentID}/complete", appointmentController.CompleteAppointment)
	router.With(middlewares.Authenticate).Post("/{appointmentID}/prescriptions", appointmentController.AddPrescription)
}
