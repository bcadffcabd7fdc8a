package chat

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubChatUsecase struct{}

func (s *stubChatUsecase) JoinRoom(ctx context.Context, session *models.Session, roomName string) (*models.Room, error) {
	return &models.Room{ID: "room-1", Name: roomName, IsCity: true, MemberIDs: []string{session.UserID}}, nil
}

func (s *stubChatUsecase) SaveRoomMessage(ctx context.Context, session *models.Session, roomName, content string) (*responses.ChatMessage, error) {
	return &responses.ChatMessage{Room: roomName, SenderID: session.UserID, Content: content, Timestamp: time.Now()}, nil
}

func (s *stubChatUsecase) OpenConversation(ctx context.Context, session *models.Session, otherUserID string) (*models.Conversation, error) {
	return &models.Conversation{ID: "conv-1"}, nil
}

func (s *stubChatUsecase) SaveDirectMessage(ctx context.Context, session *models.Session, otherUserID, content string) (*responses.ChatMessage, *models.Conversation, error) {
	return &responses.ChatMessage{SenderID: session.UserID, ReceiverID: otherUserID, Content: content}, &models.Conversation{ID: "conv-1"}, nil
}

func (s *stubChatUsecase) GetRoomMessages(ctx context.Context, session *models.Session, roomName string, page, pageSize int) ([]responses.ChatMessage, int, error) {
	return nil, 0, nil
}

func (s *stubChatUsecase) GetConversationMessages(ctx context.Context, session *models.Session, otherUserID string, page, pageSize int) ([]responses.ChatMessage, int, error) {
	return nil, 0, nil
}

func (s *stubChatUsecase) ListMyRooms(ctx context.Context, session *models.Session) ([]responses.Room, error) {
	return nil, nil
}

func (s *stubChatUsecase) CreateRoom(ctx context.Context, session *models.Session, request *requests.CreateRoom) (*responses.Room, error) {
	return nil, nil
}

type stubSessionService struct{}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, err
	}
	return session, nil
}

func newTestController(hub *Hub) *ChatController {
	return NewChatController(zap.NewNop(), &config.InternalConfig{}, &stubChatUsecase{}, &stubSessionService{}, hub)
}

func connectHandler(t *testing.T, ctrl *ChatController, userID string) http.Handler {
	t.Helper()
	payload, err := json.Marshal(&models.Session{SessionID: "s-" + userID, UserID: userID, Name: "User " + userID})
	require.NoError(t, err)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, string(payload))
		ctrl.Connect(w, r.WithContext(ctx))
	})
}

func TestConnectUnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctrl := newTestController(hub)

	server := httptest.NewServer(connectHandler(t, ctrl, "u1"))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestConnectUnregisterDropsTopics(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctrl := newTestController(hub)

	server := httptest.NewServer(connectHandler(t, ctrl, "u1"))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(Event{Type: EventJoinRoom, Room: "Manila"}))
	require.Eventually(t, func() bool { return hub.TopicCount("Manila") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.TopicCount("Manila") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestJoinNoticeGoesToExistingMembersOnly(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctrl := newTestController(hub)

	alice := newTestClient("u1")
	bob := newTestClient("u2")
	hub.Register(alice)
	hub.Register(bob)

	ctx := context.Background()
	ctrl.handleJoinRoom(ctx, alice, Event{Type: EventJoinRoom, Room: "Manila"})

	// First joiner gets only the welcome; there was nobody to announce to.
	aliceEvents := drain(t, alice)
	require.Len(t, aliceEvents, 1)
	assert.Contains(t, aliceEvents[0].Message.Content, "Welcome to Manila")

	ctrl.handleJoinRoom(ctx, bob, Event{Type: EventJoinRoom, Room: "Manila"})

	// The existing member hears about the join.
	aliceEvents = drain(t, alice)
	require.Len(t, aliceEvents, 1)
	assert.Contains(t, aliceEvents[0].Message.Content, "User u2 joined the room")

	// The joiner gets the welcome but not their own join notice.
	bobEvents := drain(t, bob)
	require.Len(t, bobEvents, 1)
	assert.Contains(t, bobEvents[0].Message.Content, "Welcome to Manila")
}
