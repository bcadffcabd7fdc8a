package slots

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.TimeSlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeSlots),
	}
}

func (r *SlotMongoRepository) CreateSlot(ctx context.Context, slot *models.TimeSlot) (string, error) {
	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	slotID := result.InsertedID.(primitive.ObjectID).Hex()
	slot.ID = slotID
	return slotID, nil
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var slot models.TimeSlot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindByDoctor(ctx context.Context, filter contracts.SlotFilter) ([]models.TimeSlot, error) {
	query := bson.M{}
	if filter.DoctorID != "" {
		query["doctorId"] = filter.DoctorID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != nil {
		dayStart, dayEnd := utils.DayBounds(*filter.Date)
		query["startTime"] = bson.M{"$gte": dayStart, "$lt": dayEnd}
	}

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindOverlapping(ctx context.Context, doctorID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error) {
	query := bson.M{
		"doctorId":  doctorID,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		objectID, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		query["_id"] = bson.M{"$ne": objectID}
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) UpdateSlot(ctx context.Context, slot *models.TimeSlot) error {
	objectID, err := primitive.ObjectIDFromHex(slot.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"startTime":       slot.StartTime,
		"endTime":         slot.EndTime,
		"status":          slot.Status,
		"consultationFee": slot.ConsultationFee,
		"updatedAt":       slot.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) DeleteSlot(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// MarkBooked performs a conditional update so two concurrent bookings cannot
// both claim the slot. The matched count tells the caller whether it won.
func (r *SlotMongoRepository) MarkBooked(ctx context.Context, slotID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "status": constvars.SlotStatusAvailable}
	update := bson.M{"$set": bson.M{
		"status":    constvars.SlotStatusBooked,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *SlotMongoRepository) Release(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"status":    constvars.SlotStatusAvailable,
		"updatedAt": time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
