package chat

import (
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type ChatUsecase interface {
	// JoinRoom resolves the room by name, creating it on first join, and
	// records the user as a member.
	JoinRoom(ctx context.Context, session *models.Session, roomName string) (*models.Room, error)
	SaveRoomMessage(ctx context.Context, session *models.Session, roomName, content string) (*responses.ChatMessage, error)
	// OpenConversation resolves the DM channel between the caller and another user.
	OpenConversation(ctx context.Context, session *models.Session, otherUserID string) (*models.Conversation, error)
	SaveDirectMessage(ctx context.Context, session *models.Session, otherUserID, content string) (*responses.ChatMessage, *models.Conversation, error)

	GetRoomMessages(ctx context.Context, session *models.Session, roomName string, page, pageSize int) ([]responses.ChatMessage, int, error)
	GetConversationMessages(ctx context.Context, session *models.Session, otherUserID string, page, pageSize int) ([]responses.ChatMessage, int, error)
	ListMyRooms(ctx context.Context, session *models.Session) ([]responses.Room, error)
	CreateRoom(ctx context.Context, session *models.Session, request *requests.CreateRoom) (*responses.Room, error)
}
