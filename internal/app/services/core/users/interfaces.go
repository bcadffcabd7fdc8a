package users

import (
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, sessionData string) (*responses.UserProfile, error)
	UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error)
}
