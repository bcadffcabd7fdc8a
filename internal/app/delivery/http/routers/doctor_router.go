package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/doctors"
	"carexpert-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController, slotController *slots.SlotController) {
	router.With(middlewares.Authenticate).Get("/", doctorController.ListDoctors)
	router.With(middlewares.Authenticate).Get("/{doctorID}", doctorController.GetDoctor)
	router.With(middlewares.Authenticate).Get("/{doctorID}/slots", slotController.ListDoctorSlots)
}
