package chat

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type chatUsecase struct {
	MessageRepository      contracts.ChatMessageRepository
	RoomRepository         contracts.RoomRepository
	ConversationRepository contracts.ConversationRepository
	UserRepository         contracts.UserRepository
	Log                    *zap.Logger
}

func NewChatUsecase(
	messageRepository contracts.ChatMessageRepository,
	roomRepository contracts.RoomRepository,
	conversationRepository contracts.ConversationRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) ChatUsecase {
	return &chatUsecase{
		MessageRepository:      messageRepository,
		RoomRepository:         roomRepository,
		ConversationRepository: conversationRepository,
		UserRepository:         userRepository,
		Log:                    logger,
	}
}

func (uc *chatUsecase) JoinRoom(ctx context.Context, session *models.Session, roomName string) (*models.Room, error) {
	room, err := uc.RoomRepository.FindByName(ctx, roomName)
	if err != nil {
		return nil, err
	}
	if room == nil {
		// Rooms created lazily on first join are city rooms; private rooms
		// only come from CreateRoom. Keep this in line with the signup path.
		room = &models.Room{
			Name:      roomName,
			IsCity:    true,
			MemberIDs: []string{session.UserID},
			AdminIDs:  []string{session.UserID},
		}
		room.SetCreatedAtUpdatedAt()
		if _, err := uc.RoomRepository.CreateRoom(ctx, room); err != nil {
			return nil, err
		}
		return room, nil
	}

	if err := uc.RoomRepository.AddMember(ctx, room.ID, session.UserID); err != nil {
		return nil, err
	}
	return room, nil
}

func (uc *chatUsecase) SaveRoomMessage(ctx context.Context, session *models.Session, roomName, content string) (*responses.ChatMessage, error) {
	room, err := uc.RoomRepository.FindByName(ctx, roomName)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusNotFound, "Room not found", "room does not exist: "+roomName)
	}

	message := &models.ChatMessage{
		Room:       roomName,
		SenderID:   session.UserID,
		SenderName: session.Name,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if _, err := uc.MessageRepository.CreateMessage(ctx, message); err != nil {
		return nil, err
	}
	return buildMessageResponse(message), nil
}

func (uc *chatUsecase) OpenConversation(ctx context.Context, session *models.Session, otherUserID string) (*models.Conversation, error) {
	other, err := uc.UserRepository.FindByID(ctx, otherUserID)
	if err != nil {
		return nil, err
	}
	if other == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	return uc.ConversationRepository.FindOrCreate(ctx, session.UserID, otherUserID)
}

func (uc *chatUsecase) SaveDirectMessage(ctx context.Context, session *models.Session, otherUserID, content string) (*responses.ChatMessage, *models.Conversation, error) {
	conversation, err := uc.OpenConversation(ctx, session, otherUserID)
	if err != nil {
		return nil, nil, err
	}

	message := &models.ChatMessage{
		Room:       conversation.ID,
		SenderID:   session.UserID,
		SenderName: session.Name,
		ReceiverID: otherUserID,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if _, err := uc.MessageRepository.CreateMessage(ctx, message); err != nil {
		return nil, nil, err
	}
	return buildMessageResponse(message), conversation, nil
}

func (uc *chatUsecase) GetRoomMessages(ctx context.Context, session *models.Session, roomName string, page, pageSize int) ([]responses.ChatMessage, int, error) {
	room, err := uc.RoomRepository.FindByName(ctx, roomName)
	if err != nil {
		return nil, 0, err
	}
	if room == nil {
		return nil, 0, exceptions.WrapWithoutError(constvars.StatusNotFound, "Room not found", "room does not exist: "+roomName)
	}
	// City rooms are public; private rooms only serve history to members.
	if !room.IsCity && !containsMember(room.MemberIDs, session.UserID) {
		return nil, 0, exceptions.ErrNotResourceOwner(nil)
	}

	messages, total, err := uc.MessageRepository.FindRoomMessages(ctx, roomName, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildMessagesResponse(messages), total, nil
}

func (uc *chatUsecase) GetConversationMessages(ctx context.Context, session *models.Session, otherUserID string, page, pageSize int) ([]responses.ChatMessage, int, error) {
	conversation, err := uc.OpenConversation(ctx, session, otherUserID)
	if err != nil {
		return nil, 0, err
	}
	messages, total, err := uc.MessageRepository.FindConversationMessages(ctx, conversation.ID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildMessagesResponse(messages), total, nil
}

func (uc *chatUsecase) ListMyRooms(ctx context.Context, session *models.Session) ([]responses.Room, error) {
	rooms, err := uc.RoomRepository.FindByMember(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Room, 0, len(rooms))
	for _, room := range rooms {
		result = append(result, responses.Room{
			ID:        room.ID,
			Name:      room.Name,
			IsCity:    room.IsCity,
			MemberIDs: room.MemberIDs,
		})
	}
	return result, nil
}

func (uc *chatUsecase) CreateRoom(ctx context.Context, session *models.Session, request *requests.CreateRoom) (*responses.Room, error) {
	existing, err := uc.RoomRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.WrapWithoutError(constvars.StatusConflict, "A room with this name already exists", "duplicate room name: "+request.Name)
	}

	room := &models.Room{
		Name:      request.Name,
		MemberIDs: []string{session.UserID},
		AdminIDs:  []string{session.UserID},
	}
	room.SetCreatedAtUpdatedAt()
	roomID, err := uc.RoomRepository.CreateRoom(ctx, room)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("chatUsecase.CreateRoom created",
		zap.String(constvars.LoggingRoomKey, request.Name),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &responses.Room{
		ID:        roomID,
		Name:      room.Name,
		IsCity:    room.IsCity,
		MemberIDs: room.MemberIDs,
	}, nil
}

func buildMessageResponse(message *models.ChatMessage) *responses.ChatMessage {
	return &responses.ChatMessage{
		ID:         message.ID,
		Room:       message.Room,
		SenderID:   message.SenderID,
		SenderName: message.SenderName,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		Timestamp:  message.Timestamp,
	}
}

func buildMessagesResponse(messages []models.ChatMessage) []responses.ChatMessage {
	result := make([]responses.ChatMessage, 0, len(messages))
	for i := range messages {
		result = append(result, *buildMessageResponse(&messages[i]))
	}
	return result
}

func containsMember(memberIDs []string, userID string) bool {
	for _, id := range memberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
