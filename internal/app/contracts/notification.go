package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByID(ctx context.Context, notificationID string) (*models.Notification, error)
	FindByUser(ctx context.Context, userID string, isRead *bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
