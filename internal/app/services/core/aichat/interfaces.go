package aichat

import (
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type AiChatUsecase interface {
	// CheckSymptoms runs AI triage over the described symptoms and stores the
	// exchange in the user's history.
	CheckSymptoms(ctx context.Context, sessionData string, request *requests.SymptomCheck) (*responses.SymptomAnalysis, error)
	ListMyChats(ctx context.Context, sessionData string, page, pageSize int) ([]responses.AiChat, int, error)
	GetChat(ctx context.Context, sessionData, chatID string) (*responses.AiChat, error)
}
