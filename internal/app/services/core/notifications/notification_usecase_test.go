package notifications

import (
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeNotificationRepository struct {
	notifications map[string]*models.Notification
	nextID        int
}

func newFakeNotificationRepository() *fakeNotificationRepository {
	return &fakeNotificationRepository{notifications: make(map[string]*models.Notification)}
}

func (f *fakeNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	f.nextID++
	notification.ID = fmt.Sprintf("notif-%d", f.nextID)
	stored := *notification
	f.notifications[notification.ID] = &stored
	return notification.ID, nil
}

func (f *fakeNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	notification, ok := f.notifications[notificationID]
	if !ok {
		return nil, nil
	}
	copied := *notification
	return &copied, nil
}

func (f *fakeNotificationRepository) FindByUser(ctx context.Context, userID string, isRead *bool) ([]models.Notification, error) {
	result := make([]models.Notification, 0)
	for i := 1; i <= f.nextID; i++ {
		notification, ok := f.notifications[fmt.Sprintf("notif-%d", i)]
		if !ok || notification.UserID != userID {
			continue
		}
		if isRead != nil && notification.IsRead != *isRead {
			continue
		}
		result = append(result, *notification)
	}
	return result, nil
}

func (f *fakeNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	notification, ok := f.notifications[notificationID]
	if !ok {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	notification.IsRead = true
	return nil
}

func (f *fakeNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			notification.IsRead = true
		}
	}
	return nil
}

type fakeSessionService struct{}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func sessionData(t *testing.T, userID string) string {
	t.Helper()
	raw, err := json.Marshal(models.Session{
		SessionID: "sess-" + userID,
		UserID:    userID,
		Role:      constvars.RolePatient,
	})
	require.NoError(t, err)
	return string(raw)
}

func seedNotification(t *testing.T, repo *fakeNotificationRepository, userID, message string, isRead bool) string {
	t.Helper()
	id, err := repo.CreateNotification(context.Background(), &models.Notification{
		UserID:  userID,
		Type:    constvars.NotificationAppointmentAccepted,
		Message: message,
		IsRead:  isRead,
	})
	require.NoError(t, err)
	return id
}

func TestListMyNotifications(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	usecase := NewNotificationUsecase(repo, &fakeSessionService{}, zap.NewNop())

	seedNotification(t, repo, "user-1", "Your appointment was confirmed", false)
	seedNotification(t, repo, "user-1", "Dr. Alice cancelled your appointment", true)
	seedNotification(t, repo, "user-2", "New appointment request", false)

	t.Run("lists only the requester's notifications", func(t *testing.T) {
		result, err := usecase.ListMyNotifications(ctx, sessionData(t, "user-1"), false)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "Your appointment was confirmed", result[0].Message)
		assert.Equal(t, "Dr. Alice cancelled your appointment", result[1].Message)
	})

	t.Run("unread filter drops read entries", func(t *testing.T) {
		result, err := usecase.ListMyNotifications(ctx, sessionData(t, "user-1"), true)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.False(t, result[0].IsRead)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	usecase := NewNotificationUsecase(repo, &fakeSessionService{}, zap.NewNop())

	ownID := seedNotification(t, repo, "user-1", "Your appointment was confirmed", false)
	foreignID := seedNotification(t, repo, "user-2", "New appointment request", false)

	t.Run("marks own notification read", func(t *testing.T) {
		err := usecase.MarkRead(ctx, sessionData(t, "user-1"), ownID)
		require.NoError(t, err)
		assert.True(t, repo.notifications[ownID].IsRead)
	})

	t.Run("foreign notification looks missing", func(t *testing.T) {
		err := usecase.MarkRead(ctx, sessionData(t, "user-1"), foreignID)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientNotificationNotFound, customErr.ClientMessage)
		assert.False(t, repo.notifications[foreignID].IsRead)
	})

	t.Run("unknown notification", func(t *testing.T) {
		err := usecase.MarkRead(ctx, sessionData(t, "user-1"), "notif-999")
		require.Error(t, err)
	})
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepository()
	usecase := NewNotificationUsecase(repo, &fakeSessionService{}, zap.NewNop())

	seedNotification(t, repo, "user-1", "first", false)
	seedNotification(t, repo, "user-1", "second", false)
	otherID := seedNotification(t, repo, "user-2", "third", false)

	require.NoError(t, usecase.MarkAllRead(ctx, sessionData(t, "user-1")))

	unread, err := usecase.ListMyNotifications(ctx, sessionData(t, "user-1"), true)
	require.NoError(t, err)
	assert.Empty(t, unread)
	assert.False(t, repo.notifications[otherID].IsRead)
}
