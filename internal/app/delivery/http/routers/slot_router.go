package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/slots"

	"github.com/go-chi/chi/v5"
)

func attachSlotRoutes(router chi.Router, middlewares *middlewares.Middlewares, slotController *slots.SlotController) {
	router.With(middlewares.Authenticate).Post("/", slotController.CreateSlot)
	router.With(middlewares.Authenticate).Put("/{slotID}", slotController.UpdateSlot)
	router.With(middlewares.Authenticate).Delete("/{slotID}", slotController.DeleteSlot)
}
