package prescriptions

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	DoctorRepository       contracts.DoctorRepository
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionRepository contracts.PrescriptionRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionRepository: prescriptionRepository,
		DoctorRepository:       doctorRepository,
		SessionService:         sessionService,
		Log:                    logger,
	}
}

func (uc *prescriptionUsecase) ListMyPrescriptions(ctx context.Context, sessionData string) ([]responses.Prescription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RolePatient || session.PatientID == "" {
		return nil, exceptions.ErrPatientOnly(nil)
	}

	prescriptions, err := uc.PrescriptionRepository.FindByPatient(ctx, session.PatientID)
	if err != nil {
		return nil, err
	}

	// Doctor names are joined in memory; the doctor set per patient is tiny.
	doctorCache := make(map[string]*models.Doctor)
	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		item := responses.Prescription{
			ID:            prescription.ID,
			AppointmentID: prescription.AppointmentID,
			DoctorID:      prescription.DoctorID,
			Text:          prescription.Text,
			Notes:         prescription.Notes,
			CreatedAt:     prescription.CreatedAt,
		}
		doctor, cached := doctorCache[prescription.DoctorID]
		if !cached {
			doctor, err = uc.DoctorRepository.FindByID(ctx, prescription.DoctorID)
			if err != nil {
				return nil, err
			}
			doctorCache[prescription.DoctorID] = doctor
		}
		if doctor != nil {
			item.DoctorName = doctor.Name
			item.DoctorSpecialty = doctor.Specialty
		}
		result = append(result, item)
	}
	return result, nil
}
