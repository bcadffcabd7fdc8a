package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/chat"

	"github.com/go-chi/chi/v5"
)

func attachChatRoutes(router chi.Router, middlewares *middlewares.Middlewares, chatController *chat.ChatController) {
	router.With(middlewares.Authenticate).Get("/ws", chatController.Connect)
	router.With(middlewares.Authenticate).Get("/rooms", chatController.ListMyRooms)
	router.With(middlewares.Authenticate).Post("/rooms", chatController.CreateRoom)
	router.With(middlewares.Authenticate).Get("/rooms/{roomName}/messages", chatController.GetRoomMessages)
	router.With(middlewares.Authenticate).Get("/dm/{userID}/messages", chatController.GetConversationMessages)
}
