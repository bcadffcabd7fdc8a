package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/aichat"

	"github.com/go-chi/chi/v5"
)

func attachAiChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, aiChatController *aichat.AiChatController) {
	router.With(middlewares.Authenticate).Post("/symptom-check", aiChatController.CheckSymptoms)
	router.With(middlewares.Authenticate).Get("/", aiChatController.ListMyChats)
	router.With(middlewares.Authenticate).Get("/{chatID}", aiChatController.GetChat)
}
