package appointments

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

const slotLockKeyFormat = "slot_lock:%s"
const slotLockExpiration = 10 * time.Second

// activeStatuses are the statuses that make a doctor's date/time unavailable
// for direct booking.
var activeStatuses = []string{
	constvars.AppointmentStatusPending,
	constvars.AppointmentStatusConfirmed,
}

// overlapStatuses block a patient from booking an overlapping slot. A visit
// that already happened still occupied the interval, so COMPLETED counts too.
var overlapStatuses = []string{
	constvars.AppointmentStatusPending,
	constvars.AppointmentStatusConfirmed,
	constvars.AppointmentStatusCompleted,
}

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	SlotRepository         contracts.TimeSlotRepository
	DoctorRepository       contracts.DoctorRepository
	PatientRepository      contracts.PatientRepository
	PrescriptionRepository contracts.PrescriptionRepository
	NotificationRepository contracts.NotificationRepository
	LockerService          contracts.LockerService
	SessionService         contracts.SessionService
	Log                    *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	slotRepository contracts.TimeSlotRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	prescriptionRepository contracts.PrescriptionRepository,
	notificationRepository contracts.NotificationRepository,
	lockerService contracts.LockerService,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository:  appointmentRepository,
		SlotRepository:         slotRepository,
		DoctorRepository:       doctorRepository,
		PatientRepository:      patientRepository,
		PrescriptionRepository: prescriptionRepository,
		NotificationRepository: notificationRepository,
		LockerService:          lockerService,
		SessionService:         sessionService,
		Log:                    logger,
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RolePatient || session.PatientID == "" {
		return nil, exceptions.ErrPatientOnly(nil)
	}

	slot, err := uc.SlotRepository.FindByID(ctx, request.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.Status != constvars.SlotStatusAvailable {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	overlapping, err := uc.AppointmentRepository.FindPatientOverlapping(ctx, session.PatientID, slot.StartTime, slot.EndTime, overlapStatuses)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, exceptions.ErrPatientDoubleBooked(nil)
	}

	lockKey := fmt.Sprintf(slotLockKeyFormat, slot.ID)
	locked, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, slotLockExpiration)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Warn("appointmentUsecase.BookAppointment unlock failed",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err))
		}
	}()

	won, err := uc.SlotRepository.MarkBooked(ctx, slot.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, exceptions.ErrSlotNotAvailable(nil)
	}

	appointmentType := request.Type
	if appointmentType == "" {
		appointmentType = constvars.AppointmentTypeOnline
	}

	start, end := slot.StartTime, slot.EndTime
	appointment := &models.Appointment{
		PatientID:       session.PatientID,
		DoctorID:        slot.DoctorID,
		TimeSlotID:      slot.ID,
		StartTime:       &start,
		EndTime:         &end,
		Type:            appointmentType,
		Status:          constvars.AppointmentStatusPending,
		Notes:           request.Notes,
		ConsultationFee: slot.ConsultationFee,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		// Give the slot back, otherwise it stays BOOKED with no appointment.
		if releaseErr := uc.SlotRepository.Release(ctx, slot.ID); releaseErr != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment slot release failed",
				zap.String(constvars.LoggingSlotIDKey, slot.ID),
				zap.Error(releaseErr))
		}
		return nil, err
	}

	patientName := uc.patientName(ctx, session.PatientID)
	uc.notifyDoctor(ctx, slot.DoctorID, constvars.NotificationAppointmentRequest,
		fmt.Sprintf("%s requested an appointment on %s", patientName, utils.FormatSlotRange(slot.StartTime, slot.EndTime)))

	uc.Log.Info("appointmentUsecase.BookAppointment booked",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)
	return uc.buildResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) BookDirectAppointment(ctx context.Context, sessionData string, request *requests.BookDirectAppointment) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RolePatient || session.PatientID == "" {
		return nil, exceptions.ErrPatientOnly(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if _, err := time.Parse("2006-01-02", request.Date); err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if _, err := time.Parse("15:04", request.Time); err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	conflicts, err := uc.AppointmentRepository.CountByDoctorDateTime(ctx, doctor.ID, request.Date, request.Time, activeStatuses)
	if err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, exceptions.ErrDoctorTimeConflict(nil)
	}

	appointment := &models.Appointment{
		PatientID:       session.PatientID,
		DoctorID:        doctor.ID,
		Date:            request.Date,
		Time:            request.Time,
		Type:            request.Type,
		Status:          constvars.AppointmentStatusPending,
		Notes:           request.Notes,
		ConsultationFee: doctor.ConsultationFee,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	patientName := uc.patientName(ctx, session.PatientID)
	uc.notifyDoctor(ctx, doctor.ID, constvars.NotificationAppointmentRequest,
		fmt.Sprintf("%s requested an appointment on %s at %s", patientName, request.Date, request.Time))

	uc.Log.Info("appointmentUsecase.BookDirectAppointment booked",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)
	return uc.buildResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, sessionData string, statuses []string, upcoming *bool) ([]responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	filter := contracts.AppointmentFilter{Statuses: statuses, Upcoming: upcoming}
	switch session.Role {
	case constvars.RoleDoctor:
		filter.DoctorID = session.DoctorID
	case constvars.RolePatient:
		filter.PatientID = session.PatientID
	default:
		return nil, exceptions.ErrNotMatchRoleType(nil)
	}

	appointments, err := uc.AppointmentRepository.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *uc.buildResponse(ctx, &appointments[i]))
	}
	return result, nil
}

func (uc *appointmentUsecase) RespondAppointment(ctx context.Context, sessionData, appointmentID string, request *requests.RespondAppointment) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return nil, exceptions.ErrDoctorOnly(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DoctorID != session.DoctorID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPending {
		return nil, exceptions.ErrAppointmentNotPending(nil)
	}

	switch request.Action {
	case "accept":
		appointment.Status = constvars.AppointmentStatusConfirmed
		appointment.SetUpdatedAt()
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			return nil, err
		}
		uc.notifyPatient(ctx, appointment.PatientID, constvars.NotificationAppointmentAccepted,
			fmt.Sprintf("Dr. %s accepted your appointment on %s", session.Name, uc.describeSchedule(appointment)))
	case "reject":
		appointment.Status = constvars.AppointmentStatusRejected
		if request.Reason != "" {
			appointment.Notes = request.Reason
		}
		appointment.SetUpdatedAt()
		if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
			return nil, err
		}
		if appointment.TimeSlotID != "" {
			if err := uc.SlotRepository.Release(ctx, appointment.TimeSlotID); err != nil {
				uc.Log.Error("appointmentUsecase.RespondAppointment slot release failed",
					zap.String(constvars.LoggingSlotIDKey, appointment.TimeSlotID),
					zap.Error(err))
			}
		}
		uc.notifyPatient(ctx, appointment.PatientID, constvars.NotificationAppointmentRejected,
			uc.buildRejectionMessage(ctx, session.Name, appointment, request))
	}

	uc.Log.Info("appointmentUsecase.RespondAppointment responded",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.String("action", request.Action),
	)
	return uc.buildResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	// Either side of the appointment may cancel it.
	owningPatient := session.Role == constvars.RolePatient && session.PatientID == appointment.PatientID
	owningDoctor := session.Role == constvars.RoleDoctor && session.DoctorID == appointment.DoctorID
	if !owningPatient && !owningDoctor {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.IsFinal() {
		return nil, exceptions.ErrAppointmentFinalState(nil)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.SetUpdatedAt()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	if appointment.TimeSlotID != "" {
		if err := uc.SlotRepository.Release(ctx, appointment.TimeSlotID); err != nil {
			uc.Log.Error("appointmentUsecase.CancelAppointment slot release failed",
				zap.String(constvars.LoggingSlotIDKey, appointment.TimeSlotID),
				zap.Error(err))
		}
	}

	if owningPatient {
		uc.notifyDoctor(ctx, appointment.DoctorID, constvars.NotificationAppointmentCancelled,
			fmt.Sprintf("%s cancelled the appointment on %s", session.Name, uc.describeSchedule(appointment)))
	} else {
		uc.notifyPatient(ctx, appointment.PatientID, constvars.NotificationAppointmentCancelled,
			fmt.Sprintf("Dr. %s cancelled the appointment on %s", session.Name, uc.describeSchedule(appointment)))
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment cancelled",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.buildResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return nil, exceptions.ErrDoctorOnly(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DoctorID != session.DoctorID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	if appointment.Status != constvars.AppointmentStatusPending && appointment.Status != constvars.AppointmentStatusConfirmed {
		return nil, exceptions.ErrAppointmentFinalState(nil)
	}

	appointment.Status = constvars.AppointmentStatusCompleted
	appointment.SetUpdatedAt()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.CompleteAppointment completed",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.buildResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) AddPrescription(ctx context.Context, sessionData, appointmentID string, request *requests.AddPrescription) (*responses.Prescription, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RoleDoctor || session.DoctorID == "" {
		return nil, exceptions.ErrDoctorOnly(nil)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	if appointment.DoctorID != session.DoctorID {
		return nil, exceptions.ErrNotResourceOwner(nil)
	}
	switch appointment.Status {
	case constvars.AppointmentStatusPending, constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusCompleted:
	default:
		return nil, exceptions.ErrAppointmentFinalState(nil)
	}

	prescription := &models.Prescription{
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		PatientID:     appointment.PatientID,
		Text:          request.Text,
		Notes:         request.Notes,
	}
	prescription.SetCreatedAtUpdatedAt()

	prescriptionID, err := uc.PrescriptionRepository.CreatePrescription(ctx, prescription)
	if err != nil {
		return nil, err
	}

	// Issuing a prescription closes out the visit.
	appointment.Status = constvars.AppointmentStatusCompleted
	appointment.PrescriptionID = prescriptionID
	appointment.SetUpdatedAt()
	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.notifyPatient(ctx, appointment.PatientID, constvars.NotificationPrescriptionAdded,
		fmt.Sprintf("Dr. %s added a prescription for your appointment", session.Name))

	uc.Log.Info("appointmentUsecase.AddPrescription added",
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &responses.Prescription{
		ID:            prescriptionID,
		AppointmentID: appointment.ID,
		DoctorID:      appointment.DoctorID,
		DoctorName:    session.Name,
		Text:          prescription.Text,
		Notes:         prescription.Notes,
		CreatedAt:     prescription.CreatedAt,
	}, nil
}

func (uc *appointmentUsecase) buildRejectionMessage(ctx context.Context, doctorName string, appointment *models.Appointment, request *requests.RespondAppointment) string {
	message := fmt.Sprintf("Dr. %s declined your appointment on %s", doctorName, uc.describeSchedule(appointment))
	if request.Reason != "" {
		message += fmt.Sprintf(": %s", request.Reason)
	}

	var alternatives []string
	for _, slotID := range request.AlternativeSlotIDs {
		slot, err := uc.SlotRepository.FindByID(ctx, slotID)
		if err != nil || slot == nil || slot.Status != constvars.SlotStatusAvailable {
			continue
		}
		alternatives = append(alternatives, utils.FormatSlotRange(slot.StartTime, slot.EndTime))
	}
	if len(alternatives) > 0 {
		message += fmt.Sprintf(". Alternative slots: %s", strings.Join(alternatives, ", "))
	}
	return message
}

func (uc *appointmentUsecase) describeSchedule(appointment *models.Appointment) string {
	if appointment.StartTime != nil && appointment.EndTime != nil {
		return utils.FormatSlotRange(*appointment.StartTime, *appointment.EndTime)
	}
	return fmt.Sprintf("%s at %s", appointment.Date, appointment.Time)
}

// notifyDoctor and notifyPatient resolve the profile to its owning user and
// store a notification. Notification failures never fail the main operation.
func (uc *appointmentUsecase) notifyDoctor(ctx context.Context, doctorID, notificationType, message string) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		uc.Log.Warn("appointmentUsecase.notifyDoctor lookup failed",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err))
		return
	}
	uc.createNotification(ctx, doctor.UserID, notificationType, message)
}

func (uc *appointmentUsecase) notifyPatient(ctx context.Context, patientID, notificationType, message string) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil || patient == nil {
		uc.Log.Warn("appointmentUsecase.notifyPatient lookup failed",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err))
		return
	}
	uc.createNotification(ctx, patient.UserID, notificationType, message)
}

func (uc *appointmentUsecase) createNotification(ctx context.Context, userID, notificationType, message string) {
	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Message: message,
	}
	notification.SetCreatedAtUpdatedAt()
	if _, err := uc.NotificationRepository.CreateNotification(ctx, notification); err != nil {
		uc.Log.Warn("appointmentUsecase.createNotification failed",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err))
	}
}

func (uc *appointmentUsecase) patientName(ctx context.Context, patientID string) string {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil || patient == nil {
		return "A patient"
	}
	return patient.Name
}

func (uc *appointmentUsecase) buildResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	response := &responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		TimeSlotID:      appointment.TimeSlotID,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		Date:            appointment.Date,
		Time:            appointment.Time,
		Type:            appointment.Type,
		Status:          appointment.Status,
		Notes:           appointment.Notes,
		ConsultationFee: appointment.ConsultationFee,
		PrescriptionID:  appointment.PrescriptionID,
		CreatedAt:       appointment.CreatedAt,
	}
	if patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	if doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	return response
}
