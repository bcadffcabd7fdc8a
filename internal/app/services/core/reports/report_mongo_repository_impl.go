package reports

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
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReports),
	}
}

func (r *ReportMongoRepository) CreateReport(ctx context.Context, report *models.Report) (string, error) {
	result, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	reportID := result.InsertedID.(primitive.ObjectID).Hex()
	report.ID = reportID
	return reportID, nil
}

func (r *ReportMongoRepository) FindByID(ctx context.Context, reportID string) (*models.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var report models.Report
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&report)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &report, nil
}

func (r *ReportMongoRepository) MarkCompleted(ctx context.Context, reportID, extractedText string, analysis *contracts.ReportAnalysis) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":             constvars.ReportStatusCompleted,
		"extractedText":      extractedText,
		"summary":            analysis.Summary,
		"abnormalValues":     analysis.AbnormalValues,
		"possibleConditions": analysis.PossibleConditions,
		"recommendation":     analysis.Recommendation,
		"disclaimer":         analysis.Disclaimer,
		"error":              "",
		"updatedAt":          time.Now(),
	}}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ReportMongoRepository) MarkFailed(ctx context.Context, reportID, errMessage string) error {
	objectID, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    constvars.ReportStatusFailed,
		"error":     errMessage,
		"updatedAt": time.Now(),
	}}
	if _, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update); err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
