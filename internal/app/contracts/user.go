package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, identifier string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Doctor, error)
	FindAll(ctx context.Context, specialty, search string, page, pageSize int) ([]models.Doctor, int, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
}
