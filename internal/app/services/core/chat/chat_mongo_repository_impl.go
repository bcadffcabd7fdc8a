package chat

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatMessageMongoRepository(db *mongo.Client, dbName string) contracts.ChatMessageRepository {
	return &ChatMessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChatMessages),
	}
}

func (r *ChatMessageMongoRepository) CreateMessage(ctx context.Context, message *models.ChatMessage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	messageID := result.InsertedID.(primitive.ObjectID).Hex()
	message.ID = messageID
	return messageID, nil
}

func (r *ChatMessageMongoRepository) FindRoomMessages(ctx context.Context, room string, page, pageSize int) ([]models.ChatMessage, int, error) {
	query := bson.M{"room": room, "receiverId": bson.M{"$exists": false}}
	return r.findPage(ctx, query, page, pageSize)
}

func (r *ChatMessageMongoRepository) FindConversationMessages(ctx context.Context, conversationID string, page, pageSize int) ([]models.ChatMessage, int, error) {
	query := bson.M{"room": conversationID, "receiverId": bson.M{"$exists": true}}
	return r.findPage(ctx, query, page, pageSize)
}

func (r *ChatMessageMongoRepository) findPage(ctx context.Context, query bson.M, page, pageSize int) ([]models.ChatMessage, int, error) {
	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, int(total), nil
}

type RoomMongoRepository struct {
	Collection *mongo.Collection
}

func NewRoomMongoRepository(db *mongo.Client, dbName string) contracts.RoomRepository {
	return &RoomMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionRooms),
	}
}

func (r *RoomMongoRepository) CreateRoom(ctx context.Context, room *models.Room) (string, error) {
	result, err := r.Collection.InsertOne(ctx, room)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	roomID := result.InsertedID.(primitive.ObjectID).Hex()
	room.ID = roomID
	return roomID, nil
}

func (r *RoomMongoRepository) FindByName(ctx context.Context, name string) (*models.Room, error) {
	var room models.Room
	err := r.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &room, nil
}

func (r *RoomMongoRepository) FindByMember(ctx context.Context, userID string) ([]models.Room, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"memberIds": userID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return rooms, nil
}

func (r *RoomMongoRepository) AddMember(ctx context.Context, roomID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$addToSet": bson.M{"memberIds": userID}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

type ConversationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConversationMongoRepository(db *mongo.Client, dbName string) contracts.ConversationRepository {
	return &ConversationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConversations),
	}
}

func (r *ConversationMongoRepository) FindOrCreate(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	participants := []string{userA, userB}
	sort.Strings(participants)

	var conversation models.Conversation
	filter := bson.M{"participantIds": participants}
	update := bson.M{
		"$setOnInsert": bson.M{
			"participantIds": participants,
			"createdAt":      time.Now(),
			"updatedAt":      time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&conversation)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &conversation, nil
}

func (r *ConversationMongoRepository) FindByID(ctx context.Context, conversationID string) (*models.Conversation, error) {
	objectID, err := primitive.ObjectIDFromHex(conversationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var conversation models.Conversation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &conversation, nil
}
