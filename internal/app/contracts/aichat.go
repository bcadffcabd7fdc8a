package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type AiChatRepository interface {
	CreateAiChat(ctx context.Context, chat *models.AiChat) (string, error)
	FindByID(ctx context.Context, chatID string) (*models.AiChat, error)
	FindByUser(ctx context.Context, userID string, page, pageSize int) ([]models.AiChat, int, error)
}
