package notifications

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

func NewNotificationUsecase(
	notificationRepository contracts.NotificationRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		SessionService:         sessionService,
		Log:                    logger,
	}
}

func (uc *notificationUsecase) ListMyNotifications(ctx context.Context, sessionData string, unreadOnly bool) ([]responses.Notification, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var isRead *bool
	if unreadOnly {
		value := false
		isRead = &value
	}

	notifications, err := uc.NotificationRepository.FindByUser(ctx, session.UserID, isRead)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Notification, 0, len(notifications))
	for _, notification := range notifications {
		result = append(result, responses.Notification{
			ID:        notification.ID,
			Type:      notification.Type,
			Message:   notification.Message,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt,
		})
	}
	return result, nil
}

func (uc *notificationUsecase) MarkRead(ctx context.Context, sessionData, notificationID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	notification, err := uc.NotificationRepository.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	// A foreign notification is reported as missing, not forbidden, so callers
	// cannot probe other users' notification IDs.
	if notification == nil || notification.UserID != session.UserID {
		return exceptions.ErrNotificationNotFound(nil)
	}

	return uc.NotificationRepository.MarkRead(ctx, notificationID)
}

func (uc *notificationUsecase) MarkAllRead(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	if err := uc.NotificationRepository.MarkAllRead(ctx, session.UserID); err != nil {
		return err
	}

	uc.Log.Info("notificationUsecase.MarkAllRead done",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil
}
