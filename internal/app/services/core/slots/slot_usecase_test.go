package slots

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSlotRepository struct {
	slots map[string]*models.TimeSlot
	seq   int
}

func newFakeSlotRepository() *fakeSlotRepository {
	return &fakeSlotRepository{slots: make(map[string]*models.TimeSlot)}
}

func (r *fakeSlotRepository) CreateSlot(ctx context.Context, slot *models.TimeSlot) (string, error) {
	r.seq++
	slot.ID = fmt.Sprintf("slot-%d", r.seq)
	r.slots[slot.ID] = slot
	return slot.ID, nil
}

func (r *fakeSlotRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	return r.slots[slotID], nil
}

func (r *fakeSlotRepository) FindByDoctor(ctx context.Context, filter contracts.SlotFilter) ([]models.TimeSlot, error) {
	var result []models.TimeSlot
	for _, slot := range r.slots {
		if filter.DoctorID != "" && slot.DoctorID != filter.DoctorID {
			continue
		}
		if filter.Status != "" && slot.Status != filter.Status {
			continue
		}
		if filter.Date != nil {
			dayStart, dayEnd := utils.DayBounds(*filter.Date)
			if slot.StartTime.Before(dayStart) || !slot.StartTime.Before(dayEnd) {
				continue
			}
		}
		result = append(result, *slot)
	}
	return result, nil
}

func (r *fakeSlotRepository) FindOverlapping(ctx context.Context, doctorID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error) {
	var result []models.TimeSlot
	for _, slot := range r.slots {
		if slot.DoctorID != doctorID || slot.ID == excludeID {
			continue
		}
		if utils.Overlaps(slot.StartTime, slot.EndTime, start, end) {
			result = append(result, *slot)
		}
	}
	return result, nil
}

func (r *fakeSlotRepository) UpdateSlot(ctx context.Context, slot *models.TimeSlot) error {
	r.slots[slot.ID] = slot
	return nil
}

func (r *fakeSlotRepository) DeleteSlot(ctx context.Context, slotID string) error {
	delete(r.slots, slotID)
	return nil
}

func (r *fakeSlotRepository) MarkBooked(ctx context.Context, slotID string) (bool, error) {
	slot, ok := r.slots[slotID]
	if !ok || slot.Status != constvars.SlotStatusAvailable {
		return false, nil
	}
	slot.Status = constvars.SlotStatusBooked
	return true, nil
}

func (r *fakeSlotRepository) Release(ctx context.Context, slotID string) error {
	if slot, ok := r.slots[slotID]; ok {
		slot.Status = constvars.SlotStatusAvailable
	}
	return nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	return doctor.ID, nil
}

func (r *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return r.doctors[doctorID], nil
}

func (r *fakeDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return nil, nil
}

func (r *fakeDoctorRepository) FindAll(ctx context.Context, specialty, search string, page, pageSize int) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (r *fakeDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return nil
}

type fakeAppointmentCounter struct {
	countsBySlot map[string]int
}

func (r *fakeAppointmentCounter) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (r *fakeAppointmentCounter) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentCounter) Find(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentCounter) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	return nil
}

func (r *fakeAppointmentCounter) FindPatientOverlapping(ctx context.Context, patientID string, start, end time.Time, statuses []string) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentCounter) CountByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string, statuses []string) (int, error) {
	return 0, nil
}

func (r *fakeAppointmentCounter) CountBySlot(ctx context.Context, slotID string) (int, error) {
	return r.countsBySlot[slotID], nil
}

type fakeSessionService struct{}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func doctorSessionData(t *testing.T, doctorID string) string {
	t.Helper()
	payload, err := json.Marshal(&models.Session{
		SessionID: "sess-1",
		UserID:    "user-1",
		Role:      constvars.RoleDoctor,
		DoctorID:  doctorID,
	})
	require.NoError(t, err)
	return string(payload)
}

func patientSessionData(t *testing.T, patientID string) string {
	t.Helper()
	payload, err := json.Marshal(&models.Session{
		SessionID: "sess-2",
		UserID:    "user-2",
		Role:      constvars.RolePatient,
		PatientID: patientID,
	})
	require.NoError(t, err)
	return string(payload)
}

func newTestSlotUsecase() (SlotUsecase, *fakeSlotRepository, *fakeAppointmentCounter) {
	slotRepo := newFakeSlotRepository()
	doctorRepo := &fakeDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Cruz", ConsultationFee: 500},
	}}
	appointmentRepo := &fakeAppointmentCounter{countsBySlot: make(map[string]int)}
	uc := NewSlotUsecase(slotRepo, doctorRepo, appointmentRepo, &fakeSessionService{}, zap.NewNop())
	return uc, slotRepo, appointmentRepo
}

func slotTimes(hours, durationMinutes int) (string, string) {
	start := time.Now().Add(time.Duration(hours) * time.Hour).Truncate(time.Minute)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

func TestSlotUsecaseCreateSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("creates available slot with doctor default fee", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start, end := slotTimes(24, 60)

		slot, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start,
			EndTime:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.SlotStatusAvailable, slot.Status)
		assert.Equal(t, "doc-1", slot.DoctorID)
		assert.Equal(t, 500.0, slot.ConsultationFee)
	})

	t.Run("explicit fee wins over doctor default", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start, end := slotTimes(24, 60)

		slot, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime:       start,
			EndTime:         end,
			ConsultationFee: 750,
		})
		require.NoError(t, err)
		assert.Equal(t, 750.0, slot.ConsultationFee)
	})

	t.Run("patient cannot create slots", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start, end := slotTimes(24, 60)

		_, err := uc.CreateSlot(ctx, patientSessionData(t, "pat-1"), &requests.CreateTimeSlot{
			StartTime: start,
			EndTime:   end,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		end, start := slotTimes(24, 60)

		_, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start,
			EndTime:   end,
		})
		require.Error(t, err)
	})

	t.Run("slot longer than three hours rejected", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start, end := slotTimes(24, 200)

		_, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start,
			EndTime:   end,
		})
		require.Error(t, err)
	})

	t.Run("overlapping slot rejected", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start, end := slotTimes(24, 60)

		_, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start, EndTime: end,
		})
		require.NoError(t, err)

		_, err = uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start, EndTime: end,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("back to back slots allowed", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
		mid := start.Add(time.Hour)
		end := mid.Add(time.Hour)

		_, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start.Format(time.RFC3339), EndTime: mid.Format(time.RFC3339),
		})
		require.NoError(t, err)

		_, err = uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: mid.Format(time.RFC3339), EndTime: end.Format(time.RFC3339),
		})
		require.NoError(t, err)
	})
}

func TestSlotUsecaseUpdateSlot(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc SlotUsecase) string {
		t.Helper()
		start, end := slotTimes(24, 60)
		slot, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		return slot.ID
	}

	t.Run("owner updates fee", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		slotID := seed(t, uc)

		updated, err := uc.UpdateSlot(ctx, doctorSessionData(t, "doc-1"), slotID, &requests.UpdateTimeSlot{
			ConsultationFee: 900,
		})
		require.NoError(t, err)
		assert.Equal(t, 900.0, updated.ConsultationFee)
	})

	t.Run("non owner rejected", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		slotID := seed(t, uc)

		_, err := uc.UpdateSlot(ctx, doctorSessionData(t, "doc-2"), slotID, &requests.UpdateTimeSlot{
			ConsultationFee: 900,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("booked slot cannot be updated", func(t *testing.T) {
		uc, slotRepo, _ := newTestSlotUsecase()
		slotID := seed(t, uc)
		won, err := slotRepo.MarkBooked(ctx, slotID)
		require.NoError(t, err)
		require.True(t, won)

		_, err = uc.UpdateSlot(ctx, doctorSessionData(t, "doc-1"), slotID, &requests.UpdateTimeSlot{
			ConsultationFee: 900,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})
}

func TestSlotUsecaseDeleteSlot(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, uc SlotUsecase) string {
		t.Helper()
		start, end := slotTimes(24, 60)
		slot, err := uc.CreateSlot(ctx, doctorSessionData(t, "doc-1"), &requests.CreateTimeSlot{
			StartTime: start, EndTime: end,
		})
		require.NoError(t, err)
		return slot.ID
	}

	t.Run("owner deletes unused slot", func(t *testing.T) {
		uc, slotRepo, _ := newTestSlotUsecase()
		slotID := seed(t, uc)

		require.NoError(t, uc.DeleteSlot(ctx, doctorSessionData(t, "doc-1"), slotID))
		assert.Empty(t, slotRepo.slots)
	})

	t.Run("slot with appointment history cannot be deleted", func(t *testing.T) {
		uc, _, appointmentRepo := newTestSlotUsecase()
		slotID := seed(t, uc)
		appointmentRepo.countsBySlot[slotID] = 1

		err := uc.DeleteSlot(ctx, doctorSessionData(t, "doc-1"), slotID)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("missing slot yields not found", func(t *testing.T) {
		uc, _, _ := newTestSlotUsecase()
		err := uc.DeleteSlot(ctx, doctorSessionData(t, "doc-1"), "slot-missing")
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
