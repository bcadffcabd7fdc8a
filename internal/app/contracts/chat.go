package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type ChatMessageRepository interface {
	CreateMessage(ctx context.Context, message *models.ChatMessage) (string, error)
	// FindRoomMessages returns room broadcasts (no receiver) ascending by timestamp.
	FindRoomMessages(ctx context.Context, room string, page, pageSize int) ([]models.ChatMessage, int, error)
	// FindConversationMessages returns DMs of a conversation ascending by timestamp.
	FindConversationMessages(ctx context.Context, conversationID string, page, pageSize int) ([]models.ChatMessage, int, error)
}

type RoomRepository interface {
	CreateRoom(ctx context.Context, room *models.Room) (string, error)
	FindByName(ctx context.Context, name string) (*models.Room, error)
	FindByMember(ctx context.Context, userID string) ([]models.Room, error)
	AddMember(ctx context.Context, roomID, userID string) error
}

type ConversationRepository interface {
	// FindOrCreate resolves the conversation for the unordered user pair,
	// creating it on first contact.
	FindOrCreate(ctx context.Context, userA, userB string) (*models.Conversation, error)
	FindByID(ctx context.Context, conversationID string) (*models.Conversation, error)
}
