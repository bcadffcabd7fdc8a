package notifications

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	notificationID := result.InsertedID.(primitive.ObjectID).Hex()
	notification.ID = notificationID
	return notificationID, nil
}

func (r *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var notification models.Notification
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (r *NotificationMongoRepository) FindByUser(ctx context.Context, userID string, isRead *bool) ([]models.Notification, error) {
	query := bson.M{"userId": userID}
	if isRead != nil {
		query["isRead"] = *isRead
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (r *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID string) error {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NotificationMongoRepository) MarkAllRead(ctx context.Context, userID string) error {
	update := bson.M{"$set": bson.M{"isRead": true, "updatedAt": time.Now()}}
	_, err := r.Collection.UpdateMany(ctx, bson.M{"userId": userID, "isRead": false}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
