package doctors

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) ListDoctors(ctx context.Context, specialty, search string, page, pageSize int) ([]responses.Doctor, int, error) {
	doctors, total, err := uc.DoctorRepository.FindAll(ctx, specialty, search, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		result = append(result, responses.Doctor{
			ID:              doctor.ID,
			Name:            doctor.Name,
			Specialty:       doctor.Specialty,
			ClinicLocation:  doctor.ClinicLocation,
			ConsultationFee: doctor.ConsultationFee,
		})
	}
	return result, total, nil
}

func (uc *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	return &responses.Doctor{
		ID:              doctor.ID,
		Name:            doctor.Name,
		Specialty:       doctor.Specialty,
		ClinicLocation:  doctor.ClinicLocation,
		ConsultationFee: doctor.ConsultationFee,
	}, nil
}
