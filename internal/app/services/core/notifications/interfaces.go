package notifications

import (
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type NotificationUsecase interface {
	// ListMyNotifications returns the caller's notifications, optionally only unread.
	ListMyNotifications(ctx context.Context, sessionData string, unreadOnly bool) ([]responses.Notification, error)
	MarkRead(ctx context.Context, sessionData, notificationID string) error
	MarkAllRead(ctx context.Context, sessionData string) error
}
