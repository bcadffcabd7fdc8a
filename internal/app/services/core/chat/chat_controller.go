package chat

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const dmTopicFormat = "dm:%s"

type ChatController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ChatUsecase    ChatUsecase
	SessionService contracts.SessionService
	Hub            *Hub
}

func NewChatController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	chatUsecase ChatUsecase,
	sessionService contracts.SessionService,
	hub *Hub,
) *ChatController {
	return &ChatController{
		Log:            logger,
		InternalConfig: internalConfig,
		ChatUsecase:    chatUsecase,
		SessionService: sessionService,
		Hub:            hub,
	}
}

func (ctrl *ChatController) session(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return nil, false
	}
	session, err := ctrl.SessionService.ParseSessionData(r.Context(), sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return nil, false
	}
	return session, true
}

// Connect upgrades the request to a websocket and serves chat events until
// the peer disconnects.
func (ctrl *ChatController) Connect(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ChatController.Connect called")

	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Error("ChatController.Connect upgrade failed", zap.Error(err))
		return
	}

	client := newClient(session, conn)
	ctrl.Hub.Register(client)

	go client.writePump()
	go func() {
		client.readPump(ctrl.handleEvent)
		ctrl.Hub.Unregister(client)
	}()
}

func (ctrl *ChatController) handleEvent(client *Client, event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch event.Type {
	case EventJoinRoom:
		ctrl.handleJoinRoom(ctx, client, event)
	case EventRoomMessage:
		ctrl.handleRoomMessage(ctx, client, event)
	case EventJoinDm:
		ctrl.handleJoinDm(ctx, client, event)
	case EventDmMessage:
		ctrl.handleDmMessage(ctx, client, event)
	default:
		client.sendEvent(Event{Type: EventError, Error: "unknown event type"})
	}
}

func (ctrl *ChatController) handleJoinRoom(ctx context.Context, client *Client, event Event) {
	if event.Room == "" {
		client.sendEvent(Event{Type: EventError, Error: "room is required"})
		return
	}

	room, err := ctrl.ChatUsecase.JoinRoom(ctx, client.session, event.Room)
	if err != nil {
		ctrl.sendError(client, err)
		return
	}

	// Announce to the members already in the room before subscribing the
	// joiner, so the joiner does not receive their own join notice.
	ctrl.Hub.Broadcast(room.Name, Event{
		Type: EventNotice,
		Room: room.Name,
		Message: &responses.ChatMessage{
			Room:       room.Name,
			SenderName: constvars.ChatBotName,
			Content:    fmt.Sprintf("%s joined the room", client.session.Name),
			Timestamp:  time.Now(),
		},
	})
	ctrl.Hub.Subscribe(client, room.Name)
	client.sendEvent(Event{
		Type: EventNotice,
		Room: room.Name,
		Message: &responses.ChatMessage{
			Room:       room.Name,
			SenderName: constvars.ChatBotName,
			Content:    fmt.Sprintf("Welcome to %s, %s!", room.Name, client.session.Name),
			Timestamp:  time.Now(),
		},
	})
}

func (ctrl *ChatController) handleRoomMessage(ctx context.Context, client *Client, event Event) {
	if event.Room == "" || event.Content == "" {
		client.sendEvent(Event{Type: EventError, Error: "room and content are required"})
		return
	}
	if _, joined := client.topics[event.Room]; !joined {
		client.sendEvent(Event{Type: EventError, Error: "join the room before sending messages"})
		return
	}

	message, err := ctrl.ChatUsecase.SaveRoomMessage(ctx, client.session, event.Room, utils.SanitizeString(event.Content))
	if err != nil {
		ctrl.sendError(client, err)
		return
	}
	ctrl.Hub.Broadcast(event.Room, Event{Type: EventMessage, Room: event.Room, Message: message})
}

func (ctrl *ChatController) handleJoinDm(ctx context.Context, client *Client, event Event) {
	if event.ReceiverID == "" {
		client.sendEvent(Event{Type: EventError, Error: "receiverId is required"})
		return
	}

	conversation, err := ctrl.ChatUsecase.OpenConversation(ctx, client.session, event.ReceiverID)
	if err != nil {
		ctrl.sendError(client, err)
		return
	}
	ctrl.Hub.Subscribe(client, fmt.Sprintf(dmTopicFormat, conversation.ID))
}

func (ctrl *ChatController) handleDmMessage(ctx context.Context, client *Client, event Event) {
	if event.ReceiverID == "" || event.Content == "" {
		client.sendEvent(Event{Type: EventError, Error: "receiverId and content are required"})
		return
	}

	message, conversation, err := ctrl.ChatUsecase.SaveDirectMessage(ctx, client.session, event.ReceiverID, utils.SanitizeString(event.Content))
	if err != nil {
		ctrl.sendError(client, err)
		return
	}

	topic := fmt.Sprintf(dmTopicFormat, conversation.ID)
	ctrl.Hub.Subscribe(client, topic)
	ctrl.Hub.Broadcast(topic, Event{Type: EventMessage, ReceiverID: event.ReceiverID, Message: message})
}

func (ctrl *ChatController) sendError(client *Client, err error) {
	message := constvars.ErrClientSomethingWrongWithApplication
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
	}
	ctrl.Log.Error("ChatController event failed", zap.Error(err))
	client.sendEvent(Event{Type: EventError, Error: message})
}

func (ctrl *ChatController) GetRoomMessages(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ChatController.GetRoomMessages called")

	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	roomName := chi.URLParam(r, "roomName")
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ChatUsecase.GetRoomMessages(ctx, session, roomName, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetRoomMessagesSuccess, pagination, result)
}

func (ctrl *ChatController) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ChatController.GetConversationMessages called")

	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	otherUserID := chi.URLParam(r, "userID")
	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ChatUsecase.GetConversationMessages(ctx, session, otherUserID, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDmMessagesSuccess, pagination, result)
}

func (ctrl *ChatController) ListMyRooms(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ChatController.ListMyRooms called")

	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChatUsecase.ListMyRooms(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRoomsSuccess, result)
}

func (ctrl *ChatController) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ChatController.CreateRoom called")

	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	request := new(requests.CreateRoom)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Name = utils.SanitizeString(request.Name)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChatUsecase.CreateRoom(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRoomSuccess, result)
}
