package users

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository    contracts.UserRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	Log               *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) UserUsecase {
	return &userUsecase{
		UserRepository:    userRepository,
		DoctorRepository:  doctorRepository,
		PatientRepository: patientRepository,
		SessionService:    sessionService,
		Log:               logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, sessionData string) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	return uc.buildProfile(ctx, user)
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, sessionData string, request *requests.UpdateProfile) (*responses.UserProfile, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	user.SetUpdatedAt()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if user.Role == constvars.RoleDoctor && user.DoctorID != "" {
		doctor, err := uc.DoctorRepository.FindByID(ctx, user.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			return nil, exceptions.ErrDoctorNotFound(nil)
		}
		if request.Name != "" {
			doctor.Name = request.Name
		}
		if request.Specialty != "" {
			doctor.Specialty = request.Specialty
		}
		if request.ClinicLocation != "" {
			doctor.ClinicLocation = request.ClinicLocation
		}
		if request.ConsultationFee > 0 {
			doctor.ConsultationFee = request.ConsultationFee
		}
		doctor.SetUpdatedAt()
		if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
			return nil, err
		}
	}

	uc.Log.Info("userUsecase.UpdateProfile updated",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return uc.buildProfile(ctx, user)
}

func (uc *userUsecase) buildProfile(ctx context.Context, user *models.User) (*responses.UserProfile, error) {
	profile := &responses.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		PatientID: user.PatientID,
	}

	if user.Role == constvars.RoleDoctor && user.DoctorID != "" {
		doctor, err := uc.DoctorRepository.FindByID(ctx, user.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			profile.Specialty = doctor.Specialty
			profile.ClinicLocation = doctor.ClinicLocation
			profile.ConsultationFee = doctor.ConsultationFee
		}
	}
	return profile, nil
}
