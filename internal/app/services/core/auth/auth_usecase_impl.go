package auth

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	RoomRepository    contracts.RoomRepository
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	roomRepository contracts.RoomRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository:    userRepository,
		DoctorRepository:  doctorRepository,
		PatientRepository: patientRepository,
		RoomRepository:    roomRepository,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.UserProfile, error) {
	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existing, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	role := constvars.RolePatient
	if request.Role == "doctor" {
		if request.Specialty == "" || request.ClinicLocation == "" {
			return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, "Specialty and clinic location are required for doctors", "doctor signup missing specialty or clinic location")
		}
		role = constvars.RoleDoctor
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     role,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := &responses.UserProfile{
		ID:       userID,
		Name:     request.Name,
		Email:    request.Email,
		Username: request.Username,
		Role:     role,
	}

	if role == constvars.RoleDoctor {
		doctor := &models.Doctor{
			UserID:         userID,
			Name:           request.Name,
			Specialty:      request.Specialty,
			ClinicLocation: request.ClinicLocation,
		}
		doctor.SetCreatedAtUpdatedAt()
		doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
		if err != nil {
			return nil, err
		}
		user.DoctorID = doctorID
		profile.DoctorID = doctorID
		profile.Specialty = request.Specialty
		profile.ClinicLocation = request.ClinicLocation
	} else {
		patient := &models.Patient{UserID: userID, Name: request.Name}
		patient.SetCreatedAtUpdatedAt()
		patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		user.PatientID = patientID
		profile.PatientID = patientID
	}

	user.SetUpdatedAt()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	if role == constvars.RoleDoctor {
		uc.joinCityRoom(ctx, userID, request.ClinicLocation)
	}

	uc.Log.Info("authUsecase.Signup registered user",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("role", user.Role),
	)
	return profile, nil
}

// joinCityRoom adds a new doctor to the chat room named after their clinic
// location, creating the room on first use. Failures only cost the doctor a
// room membership, so they are logged and swallowed.
func (uc *authUsecase) joinCityRoom(ctx context.Context, userID, city string) {
	room, err := uc.RoomRepository.FindByName(ctx, city)
	if err != nil {
		uc.Log.Warn("authUsecase.joinCityRoom lookup failed",
			zap.String(constvars.LoggingRoomKey, city),
			zap.Error(err))
		return
	}
	if room == nil {
		newRoom := &models.Room{Name: city, IsCity: true, MemberIDs: []string{userID}}
		newRoom.SetCreatedAtUpdatedAt()
		if _, err := uc.RoomRepository.CreateRoom(ctx, newRoom); err != nil {
			uc.Log.Warn("authUsecase.joinCityRoom create failed",
				zap.String(constvars.LoggingRoomKey, city),
				zap.Error(err))
		}
		return
	}
	if err := uc.RoomRepository.AddMember(ctx, room.ID, userID); err != nil {
		uc.Log.Warn("authUsecase.joinCityRoom add member failed",
			zap.String(constvars.LoggingRoomKey, city),
			zap.Error(err))
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.EmailOrUsername)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionID := uuid.NewString()
	session := &models.Session{
		SessionID: sessionID,
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		PatientID: user.PatientID,
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.SessionExpiryTimeInHours) * time.Hour
	if err := uc.RedisRepository.Set(ctx, sessionID, session, sessionExpiry); err != nil {
		return nil, err
	}

	jwtExpiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	token, err := utils.GenerateJWT(sessionID, uc.InternalConfig.JWT.Secret, jwtExpiry)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	profile := &responses.UserProfile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		PatientID: user.PatientID,
	}

	uc.Log.Info("authUsecase.Login user logged in",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.Login{Token: token, User: profile}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return exceptions.ErrCannotParseJSON(fmt.Errorf("session payload: %w", err))
	}
	return uc.RedisRepository.Delete(ctx, session.SessionID)
}
