package doctors

import (
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialty, search string, page, pageSize int) ([]responses.Doctor, int, error)
	GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error)
}
