package auth

import (
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.UserProfile, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}
