package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error)
	FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error)
}
