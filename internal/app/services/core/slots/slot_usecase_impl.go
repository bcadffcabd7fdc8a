package slots

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

type slotUsecase struct {
	SlotRepository        contracts.TimeSlotRepository
	DoctorRepository      contracts.DoctorRepository
	AppointmentRepository contracts.AppointmentRepository
	SessionService        contracts.SessionService
	Log                   *zap.Logger
}

func NewSlotUsecase(
	slotRepository contracts.TimeSlotRepository,
	doctorRepository contracts.DoctorRepository,
	appointmentRepository contracts.AppointmentRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) SlotUsecase {
	return &slotUsecase{
		SlotRepository:        slotRepository,
		DoctorRepository:      doctorRepository,
		AppointmentRepository: appointmentRepository,
		SessionService:        sessionService,
		Log:                   logger,
	}
}

func (uc *slotUsecase) CreateSlot(ctx context.Context, sessionData string, request *requests.CreateTimeSlot) (*responses.TimeSlot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return nil, exceptions.ErrDoctorOnly(nil)
	}

	start, end, err := parseSlotRange(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}
	if err := validateSlotRange(start, end); err != nil {
		return nil, err
	}

	overlapping, err := uc.SlotRepository.FindOverlapping(ctx, session.DoctorID, start, end, "")
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, exceptions.ErrSlotOverlaps(nil)
	}

	fee := request.ConsultationFee
	if fee == 0 {
		doctor, err := uc.DoctorRepository.FindByID(ctx, session.DoctorID)
		if err != nil {
			return nil, err
		}
		if doctor != nil {
			fee = doctor.ConsultationFee
		}
	}

	slot := &models.TimeSlot{
		DoctorID:        session.DoctorID,
		StartTime:       start,
		EndTime:         end,
		Status:          constvars.SlotStatusAvailable,
		ConsultationFee: fee,
	}
	slot.SetCreatedAtUpdatedAt()

	slotID, err := uc.SlotRepository.CreateSlot(ctx, slot)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("slotUsecase.CreateSlot created",
		zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)
	return buildSlotResponse(slot), nil
}

func (uc *slotUsecase) ListDoctorSlots(ctx context.Context, doctorID, status, date string) ([]responses.TimeSlot, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	filter := contracts.SlotFilter{DoctorID: doctorID, Status: status}
	if date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		filter.Date = &day
	}

	slots, err := uc.SlotRepository.FindByDoctor(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]responses.TimeSlot, 0, len(slots))
	for i := range slots {
		result = append(result, *buildSlotResponse(&slots[i]))
	}
	return result, nil
}

func (uc *slotUsecase) UpdateSlot(ctx context.Context, sessionData, slotID string, request *requests.UpdateTimeSlot) (*responses.TimeSlot, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return nil, exceptions.ErrDoctorOnly(nil)
	}

	slot, err := uc.SlotRepository.FindByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.DoctorID != session.DoctorID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if slot.Status == constvars.SlotStatusBooked {
		return nil, exceptions.ErrSlotHasAppointment(nil)
	}

	start, end := slot.StartTime, slot.EndTime
	if request.StartTime != "" {
		start, err = time.Parse(time.RFC3339, request.StartTime)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
	}
	if request.EndTime != "" {
		end, err = time.Parse(time.RFC3339, request.EndTime)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
	}
	if err := validateSlotRange(start, end); err != nil {
		return nil, err
	}

	overlapping, err := uc.SlotRepository.FindOverlapping(ctx, session.DoctorID, start, end, slot.ID)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, exceptions.ErrSlotOverlaps(nil)
	}

	slot.StartTime = start
	slot.EndTime = end
	if request.ConsultationFee > 0 {
		slot.ConsultationFee = request.ConsultationFee
	}
	slot.SetUpdatedAt()

	if err := uc.SlotRepository.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.Log.Info("slotUsecase.UpdateSlot updated",
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
	)
	return buildSlotResponse(slot), nil
}

func (uc *slotUsecase) DeleteSlot(ctx context.Context, sessionData, slotID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return exceptions.ErrDoctorOnly(nil)
	}

	slot, err := uc.SlotRepository.FindByID(ctx, slotID)
	if err != nil {
		return err
	}
	if slot == nil {
		return exceptions.ErrSlotNotFound(nil)
	}
	if slot.DoctorID != session.DoctorID {
		return exceptions.ErrNotResourceOwner(nil)
	}
	if slot.Status == constvars.SlotStatusBooked {
		return exceptions.ErrSlotHasAppointment(nil)
	}

	count, err := uc.AppointmentRepository.CountBySlot(ctx, slot.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return exceptions.ErrSlotHasAppointment(nil)
	}

	if err := uc.SlotRepository.DeleteSlot(ctx, slot.ID); err != nil {
		return err
	}

	uc.Log.Info("slotUsecase.DeleteSlot deleted",
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
	)
	return nil
}

func parseSlotRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	end, err := time.Parse(time.RFC3339, endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, exceptions.ErrCannotParseTime(err)
	}
	return start, end, nil
}

func validateSlotRange(start, end time.Time) error {
	if !end.After(start) {
		return exceptions.ErrSlotEndBeforeStart(nil)
	}
	if end.Sub(start) > constvars.MaxSlotDurationHours*time.Hour {
		return exceptions.ErrSlotTooLong(nil)
	}
	return nil
}

func buildSlotResponse(slot *models.TimeSlot) *responses.TimeSlot {
	return &responses.TimeSlot{
		ID:              slot.ID,
		DoctorID:        slot.DoctorID,
		StartTime:       slot.StartTime,
		EndTime:         slot.EndTime,
		Status:          slot.Status,
		ConsultationFee: slot.ConsultationFee,
	}
}
