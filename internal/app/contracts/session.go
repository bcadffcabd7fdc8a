package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type SessionService interface {
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
