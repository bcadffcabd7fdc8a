package prescriptions

import (
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type PrescriptionUsecase interface {
	// ListMyPrescriptions returns the calling patient's prescriptions, newest first.
	ListMyPrescriptions(ctx context.Context, sessionData string) ([]responses.Prescription, error)
}
