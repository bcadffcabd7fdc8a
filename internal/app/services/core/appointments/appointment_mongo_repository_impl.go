package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	appointmentID := result.InsertedID.(primitive.ObjectID).Hex()
	appointment.ID = appointmentID
	return appointmentID, nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) Find(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.DoctorID != "" {
		query["doctorId"] = filter.DoctorID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if len(filter.Statuses) > 0 {
		query["status"] = bson.M{"$in": filter.Statuses}
	}
	if filter.Upcoming != nil {
		if *filter.Upcoming {
			query["startTime"] = bson.M{"$gte": time.Now()}
		} else {
			query["startTime"] = bson.M{"$lt": time.Now()}
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"status":         appointment.Status,
		"notes":          appointment.Notes,
		"prescriptionId": appointment.PrescriptionID,
		"updatedAt":      appointment.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindPatientOverlapping(ctx context.Context, patientID string, start, end time.Time, statuses []string) ([]models.Appointment, error) {
	query := bson.M{
		"patientId": patientID,
		"status":    bson.M{"$in": statuses},
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}

	cursor, err := r.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) CountByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string, statuses []string) (int, error) {
	query := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeOfDay,
		"status":   bson.M{"$in": statuses},
	}
	count, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (r *AppointmentMongoRepository) CountBySlot(ctx context.Context, slotID string) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"timeSlotId": slotID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}
