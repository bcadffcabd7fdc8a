package aichat

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AiChatMongoRepository struct {
	Collection *mongo.Collection
}

func NewAiChatMongoRepository(db *mongo.Client, dbName string) contracts.AiChatRepository {
	return &AiChatMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAiChats),
	}
}

func (r *AiChatMongoRepository) CreateAiChat(ctx context.Context, chat *models.AiChat) (string, error) {
	result, err := r.Collection.InsertOne(ctx, chat)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	chatID := result.InsertedID.(primitive.ObjectID).Hex()
	chat.ID = chatID
	return chatID, nil
}

func (r *AiChatMongoRepository) FindByID(ctx context.Context, chatID string) (*models.AiChat, error) {
	objectID, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var chat models.AiChat
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &chat, nil
}

func (r *AiChatMongoRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]models.AiChat, int, error) {
	query := bson.M{"userId": userID}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var chats []models.AiChat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return chats, int(total), nil
}
