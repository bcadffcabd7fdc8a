package appointments

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memAppointmentRepository struct {
	mu           sync.Mutex
	appointments map[string]*models.Appointment
	seq          int
	failCreate   bool
}

func newMemAppointmentRepository() *memAppointmentRepository {
	return &memAppointmentRepository{appointments: make(map[string]*models.Appointment)}
}

func (r *memAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate {
		return "", exceptions.ErrMongoDBInsertDocument(fmt.Errorf("insert refused"))
	}
	r.seq++
	appointment.ID = fmt.Sprintf("appt-%d", r.seq)
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return appointment.ID, nil
}

func (r *memAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if appointment, ok := r.appointments[appointmentID]; ok {
		copied := *appointment
		return &copied, nil
	}
	return nil, nil
}

func (r *memAppointmentRepository) Find(ctx context.Context, filter contracts.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Appointment
	for _, appointment := range r.appointments {
		if filter.DoctorID != "" && appointment.DoctorID != filter.DoctorID {
			continue
		}
		if filter.PatientID != "" && appointment.PatientID != filter.PatientID {
			continue
		}
		if len(filter.Statuses) > 0 && !containsString(filter.Statuses, appointment.Status) {
			continue
		}
		result = append(result, *appointment)
	}
	return result, nil
}

func (r *memAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *appointment
	r.appointments[appointment.ID] = &stored
	return nil
}

func (r *memAppointmentRepository) FindPatientOverlapping(ctx context.Context, patientID string, start, end time.Time, statuses []string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Appointment
	for _, appointment := range r.appointments {
		if appointment.PatientID != patientID || !containsString(statuses, appointment.Status) {
			continue
		}
		if appointment.StartTime == nil || appointment.EndTime == nil {
			continue
		}
		if utils.Overlaps(*appointment.StartTime, *appointment.EndTime, start, end) {
			result = append(result, *appointment)
		}
	}
	return result, nil
}

func (r *memAppointmentRepository) CountByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string, statuses []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, appointment := range r.appointments {
		if appointment.DoctorID == doctorID && appointment.Date == date && appointment.Time == timeOfDay && containsString(statuses, appointment.Status) {
			count++
		}
	}
	return count, nil
}

func (r *memAppointmentRepository) CountBySlot(ctx context.Context, slotID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, appointment := range r.appointments {
		if appointment.TimeSlotID == slotID {
			count++
		}
	}
	return count, nil
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

type memSlotRepository struct {
	mu    sync.Mutex
	slots map[string]*models.TimeSlot
}

func newMemSlotRepository() *memSlotRepository {
	return &memSlotRepository{slots: make(map[string]*models.TimeSlot)}
}

func (r *memSlotRepository) seed(slot *models.TimeSlot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot.ID] = slot
}

func (r *memSlotRepository) CreateSlot(ctx context.Context, slot *models.TimeSlot) (string, error) {
	r.seed(slot)
	return slot.ID, nil
}

func (r *memSlotRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok := r.slots[slotID]; ok {
		copied := *slot
		return &copied, nil
	}
	return nil, nil
}

func (r *memSlotRepository) FindByDoctor(ctx context.Context, filter contracts.SlotFilter) ([]models.TimeSlot, error) {
	return nil, nil
}

func (r *memSlotRepository) FindOverlapping(ctx context.Context, doctorID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error) {
	return nil, nil
}

func (r *memSlotRepository) UpdateSlot(ctx context.Context, slot *models.TimeSlot) error {
	r.seed(slot)
	return nil
}

func (r *memSlotRepository) DeleteSlot(ctx context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, slotID)
	return nil
}

func (r *memSlotRepository) MarkBooked(ctx context.Context, slotID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	slot, ok := r.slots[slotID]
	if !ok || slot.Status != constvars.SlotStatusAvailable {
		return false, nil
	}
	slot.Status = constvars.SlotStatusBooked
	return true, nil
}

func (r *memSlotRepository) Release(ctx context.Context, slotID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot, ok := r.slots[slotID]; ok {
		slot.Status = constvars.SlotStatusAvailable
	}
	return nil
}

func (r *memSlotRepository) status(slotID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.slots[slotID].Status
}

type memDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (r *memDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	return doctor.ID, nil
}

func (r *memDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return r.doctors[doctorID], nil
}

func (r *memDoctorRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	return nil, nil
}

func (r *memDoctorRepository) FindAll(ctx context.Context, specialty, search string, page, pageSize int) ([]models.Doctor, int, error) {
	return nil, 0, nil
}

func (r *memDoctorRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	return nil
}

type memPatientRepository struct {
	patients map[string]*models.Patient
}

func (r *memPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return patient.ID, nil
}

func (r *memPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.patients[patientID], nil
}

func (r *memPatientRepository) FindByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return nil, nil
}

type memPrescriptionRepository struct {
	prescriptions map[string]*models.Prescription
	seq           int
}

func newMemPrescriptionRepository() *memPrescriptionRepository {
	return &memPrescriptionRepository{prescriptions: make(map[string]*models.Prescription)}
}

func (r *memPrescriptionRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	r.seq++
	prescription.ID = fmt.Sprintf("rx-%d", r.seq)
	r.prescriptions[prescription.ID] = prescription
	return prescription.ID, nil
}

func (r *memPrescriptionRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	return r.prescriptions[prescriptionID], nil
}

func (r *memPrescriptionRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	var result []models.Prescription
	for _, prescription := range r.prescriptions {
		if prescription.PatientID == patientID {
			result = append(result, *prescription)
		}
	}
	return result, nil
}

type memNotificationRepository struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func (r *memNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = fmt.Sprintf("notif-%d", len(r.notifications)+1)
	r.notifications = append(r.notifications, notification)
	return notification.ID, nil
}

func (r *memNotificationRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	return nil, nil
}

func (r *memNotificationRepository) FindByUser(ctx context.Context, userID string, isRead *bool) ([]models.Notification, error) {
	return nil, nil
}

func (r *memNotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	return nil
}

func (r *memNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return nil
}

func (r *memNotificationRepository) byType(notificationType string) []*models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Notification
	for _, notification := range r.notifications {
		if notification.Type == notificationType {
			result = append(result, notification)
		}
	}
	return result
}

type memLocker struct {
	mu    sync.Mutex
	locks map[string]string
}

func newMemLocker() *memLocker {
	return &memLocker{locks: make(map[string]string)}
}

func (l *memLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, held := l.locks[key]; held {
		return false, "", nil
	}
	token := fmt.Sprintf("token-%d", len(l.locks)+1)
	l.locks[key] = token
	return true, token, nil
}

func (l *memLocker) Unlock(ctx context.Context, key, lockValue string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks[key] == lockValue {
		delete(l.locks, key)
	}
	return nil
}

type jsonSessionService struct{}

func (s *jsonSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *jsonSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

type fixture struct {
	uc            AppointmentUsecase
	appointments  *memAppointmentRepository
	slots         *memSlotRepository
	notifications *memNotificationRepository
	prescriptions *memPrescriptionRepository
}

func newFixture() *fixture {
	appointments := newMemAppointmentRepository()
	slots := newMemSlotRepository()
	doctors := &memDoctorRepository{doctors: map[string]*models.Doctor{
		"doc-1": {ID: "doc-1", UserID: "user-doc-1", Name: "Cruz", ConsultationFee: 500},
	}}
	patients := &memPatientRepository{patients: map[string]*models.Patient{
		"pat-1": {ID: "pat-1", UserID: "user-pat-1", Name: "Ana Reyes"},
		"pat-2": {ID: "pat-2", UserID: "user-pat-2", Name: "Ben Santos"},
	}}
	prescriptions := newMemPrescriptionRepository()
	notifications := &memNotificationRepository{}
	uc := NewAppointmentUsecase(
		appointments, slots, doctors, patients, prescriptions,
		notifications, newMemLocker(), &jsonSessionService{}, zap.NewNop(),
	)
	return &fixture{
		uc:            uc,
		appointments:  appointments,
		slots:         slots,
		notifications: notifications,
		prescriptions: prescriptions,
	}
}

func (f *fixture) seedSlot(slotID string) *models.TimeSlot {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	slot := &models.TimeSlot{
		ID:              slotID,
		DoctorID:        "doc-1",
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Status:          constvars.SlotStatusAvailable,
		ConsultationFee: 500,
	}
	f.slots.seed(slot)
	return slot
}

func sessionJSON(t *testing.T, session *models.Session) string {
	t.Helper()
	payload, err := json.Marshal(session)
	require.NoError(t, err)
	return string(payload)
}

func patientSession(t *testing.T, patientID string) string {
	return sessionJSON(t, &models.Session{
		SessionID: "s1", UserID: "user-" + patientID, Name: "Ana Reyes",
		Role: constvars.RolePatient, PatientID: patientID,
	})
}

func doctorSession(t *testing.T, doctorID string) string {
	return sessionJSON(t, &models.Session{
		SessionID: "s2", UserID: "user-" + doctorID, Name: "Cruz",
		Role: constvars.RoleDoctor, DoctorID: doctorID,
	})
}

func TestBookAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("books available slot as pending", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")

		appointment, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{
			TimeSlotID: "slot-1",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, "doc-1", appointment.DoctorID)
		assert.Equal(t, 500.0, appointment.ConsultationFee)
		assert.Equal(t, constvars.SlotStatusBooked, f.slots.status("slot-1"))

		requested := f.notifications.byType(constvars.NotificationAppointmentRequest)
		require.Len(t, requested, 1)
		assert.Equal(t, "user-doc-1", requested[0].UserID)
		assert.Contains(t, requested[0].Message, "Ana Reyes")
	})

	t.Run("second booking of same slot conflicts", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")

		_, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)

		_, err = f.uc.BookAppointment(ctx, patientSession(t, "pat-2"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Len(t, f.appointments.appointments, 1)
	})

	t.Run("patient cannot double book overlapping time", func(t *testing.T) {
		f := newFixture()
		slot := f.seedSlot("slot-1")
		other := *slot
		other.ID = "slot-2"
		f.slots.seed(&other)

		_, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)

		_, err = f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-2"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		// Losing attempt must not consume the second slot.
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-2"))
	})

	t.Run("completed appointment still blocks the interval", func(t *testing.T) {
		f := newFixture()
		slot := f.seedSlot("slot-1")

		_, err := f.appointments.CreateAppointment(ctx, &models.Appointment{
			PatientID: "pat-1",
			DoctorID:  "doc-2",
			StartTime: &slot.StartTime,
			EndTime:   &slot.EndTime,
			Status:    constvars.AppointmentStatusCompleted,
		})
		require.NoError(t, err)

		_, err = f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-1"))
	})

	t.Run("create failure releases the slot", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")
		f.appointments.failCreate = true

		_, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.Error(t, err)
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-1"))
	})

	t.Run("doctor cannot book", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")

		_, err := f.uc.BookAppointment(ctx, doctorSession(t, "doc-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("concurrent bookings leave exactly one appointment", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")

		var wg sync.WaitGroup
		errs := make([]error, 2)
		sessions := []string{patientSession(t, "pat-1"), patientSession(t, "pat-2")}
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = f.uc.BookAppointment(ctx, sessions[i], &requests.BookAppointment{TimeSlotID: "slot-1"})
			}(i)
		}
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				failures++
			}
		}
		assert.Equal(t, 1, failures)
		assert.Len(t, f.appointments.appointments, 1)
		assert.Equal(t, constvars.SlotStatusBooked, f.slots.status("slot-1"))
	})
}

func TestBookDirectAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("books doctor at free date and time", func(t *testing.T) {
		f := newFixture()

		appointment, err := f.uc.BookDirectAppointment(ctx, patientSession(t, "pat-1"), &requests.BookDirectAppointment{
			DoctorID: "doc-1", Date: "2026-09-01", Time: "10:00", Type: constvars.AppointmentTypeOffline,
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		assert.Equal(t, "2026-09-01", appointment.Date)
		assert.Equal(t, 500.0, appointment.ConsultationFee)
	})

	t.Run("same date and time conflicts", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.BookDirectAppointment(ctx, patientSession(t, "pat-1"), &requests.BookDirectAppointment{
			DoctorID: "doc-1", Date: "2026-09-01", Time: "10:00", Type: constvars.AppointmentTypeOnline,
		})
		require.NoError(t, err)

		_, err = f.uc.BookDirectAppointment(ctx, patientSession(t, "pat-2"), &requests.BookDirectAppointment{
			DoctorID: "doc-1", Date: "2026-09-01", Time: "10:00", Type: constvars.AppointmentTypeOnline,
		})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		f := newFixture()

		_, err := f.uc.BookDirectAppointment(ctx, patientSession(t, "pat-1"), &requests.BookDirectAppointment{
			DoctorID: "doc-1", Date: "09/01/2026", Time: "10:00", Type: constvars.AppointmentTypeOnline,
		})
		require.Error(t, err)
	})
}

func TestRespondAppointment(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, f *fixture) string {
		t.Helper()
		f.seedSlot("slot-1")
		appointment, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)
		return appointment.ID
	}

	t.Run("accept confirms and notifies patient", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		appointment, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{Action: "accept"})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, appointment.Status)

		accepted := f.notifications.byType(constvars.NotificationAppointmentAccepted)
		require.Len(t, accepted, 1)
		assert.Equal(t, "user-pat-1", accepted[0].UserID)
	})

	t.Run("reject releases slot and keeps reason", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		appointment, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{
			Action: "reject", Reason: "emergency surgery",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusRejected, appointment.Status)
		assert.Equal(t, "emergency surgery", appointment.Notes)
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-1"))

		rejected := f.notifications.byType(constvars.NotificationAppointmentRejected)
		require.Len(t, rejected, 1)
		assert.Contains(t, rejected[0].Message, "emergency surgery")
	})

	t.Run("reject can suggest alternative slots", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)
		alt := f.seedSlot("slot-alt")

		_, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{
			Action: "reject", AlternativeSlotIDs: []string{"slot-alt"},
		})
		require.NoError(t, err)

		rejected := f.notifications.byType(constvars.NotificationAppointmentRejected)
		require.Len(t, rejected, 1)
		assert.Contains(t, rejected[0].Message, utils.FormatSlotRange(alt.StartTime, alt.EndTime))
	})

	t.Run("responding twice fails", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		_, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{Action: "accept"})
		require.NoError(t, err)

		_, err = f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{Action: "reject"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("other doctor cannot respond", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		_, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-2"), appointmentID, &requests.RespondAppointment{Action: "accept"})
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})
}

func TestCancelAndComplete(t *testing.T) {
	ctx := context.Background()

	book := func(t *testing.T, f *fixture) string {
		t.Helper()
		f.seedSlot("slot-1")
		appointment, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)
		return appointment.ID
	}

	t.Run("patient cancels pending appointment and frees slot", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		appointment, err := f.uc.CancelAppointment(ctx, patientSession(t, "pat-1"), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointment.Status)
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-1"))

		cancelled := f.notifications.byType(constvars.NotificationAppointmentCancelled)
		require.Len(t, cancelled, 1)
		assert.Equal(t, "user-doc-1", cancelled[0].UserID)
	})

	t.Run("doctor cancels confirmed appointment and patient is notified", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)
		_, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{Action: "accept"})
		require.NoError(t, err)

		appointment, err := f.uc.CancelAppointment(ctx, doctorSession(t, "doc-1"), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointment.Status)
		assert.Equal(t, constvars.SlotStatusAvailable, f.slots.status("slot-1"))

		cancelled := f.notifications.byType(constvars.NotificationAppointmentCancelled)
		require.Len(t, cancelled, 1)
		assert.Equal(t, "user-pat-1", cancelled[0].UserID)
	})

	t.Run("outsider cannot cancel", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		_, err := f.uc.CancelAppointment(ctx, patientSession(t, "pat-2"), appointmentID)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("cancelling a final appointment fails", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		_, err := f.uc.CancelAppointment(ctx, patientSession(t, "pat-1"), appointmentID)
		require.NoError(t, err)

		_, err = f.uc.CancelAppointment(ctx, patientSession(t, "pat-1"), appointmentID)
		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("doctor completes confirmed appointment", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)
		_, err := f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), appointmentID, &requests.RespondAppointment{Action: "accept"})
		require.NoError(t, err)

		appointment, err := f.uc.CompleteAppointment(ctx, doctorSession(t, "doc-1"), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, appointment.Status)
	})

	t.Run("doctor completes pending appointment directly", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)

		appointment, err := f.uc.CompleteAppointment(ctx, doctorSession(t, "doc-1"), appointmentID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, appointment.Status)
	})

	t.Run("completing a cancelled appointment fails", func(t *testing.T) {
		f := newFixture()
		appointmentID := book(t, f)
		_, err := f.uc.CancelAppointment(ctx, patientSession(t, "pat-1"), appointmentID)
		require.NoError(t, err)

		_, err = f.uc.CompleteAppointment(ctx, doctorSession(t, "doc-1"), appointmentID)
		require.Error(t, err)
	})
}

func TestAddPrescription(t *testing.T) {
	ctx := context.Background()

	t.Run("doctor adds prescription after completion", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")
		booked, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)
		_, err = f.uc.RespondAppointment(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.RespondAppointment{Action: "accept"})
		require.NoError(t, err)
		_, err = f.uc.CompleteAppointment(ctx, doctorSession(t, "doc-1"), booked.ID)
		require.NoError(t, err)

		prescription, err := f.uc.AddPrescription(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.AddPrescription{
			Text: "Amoxicillin 500mg, 3x daily for 7 days",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, prescription.ID)

		stored, err := f.appointments.FindByID(ctx, booked.ID)
		require.NoError(t, err)
		assert.Equal(t, prescription.ID, stored.PrescriptionID)
		assert.Equal(t, constvars.AppointmentStatusCompleted, stored.Status)

		added := f.notifications.byType(constvars.NotificationPrescriptionAdded)
		require.Len(t, added, 1)
		assert.Equal(t, "user-pat-1", added[0].UserID)
	})

	t.Run("prescription on pending appointment completes it", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")
		booked, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)

		prescription, err := f.uc.AddPrescription(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.AddPrescription{Text: "Paracetamol 500mg as needed"})
		require.NoError(t, err)
		assert.NotEmpty(t, prescription.ID)

		stored, err := f.appointments.FindByID(ctx, booked.ID)
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, stored.Status)
	})

	t.Run("prescription on cancelled appointment fails", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")
		booked, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)
		_, err = f.uc.CancelAppointment(ctx, patientSession(t, "pat-1"), booked.ID)
		require.NoError(t, err)

		_, err = f.uc.AddPrescription(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.AddPrescription{Text: "x"})
		require.Error(t, err)
	})

	t.Run("adding twice creates two prescriptions", func(t *testing.T) {
		f := newFixture()
		f.seedSlot("slot-1")
		booked, err := f.uc.BookAppointment(ctx, patientSession(t, "pat-1"), &requests.BookAppointment{TimeSlotID: "slot-1"})
		require.NoError(t, err)

		first, err := f.uc.AddPrescription(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.AddPrescription{Text: "first"})
		require.NoError(t, err)
		second, err := f.uc.AddPrescription(ctx, doctorSession(t, "doc-1"), booked.ID, &requests.AddPrescription{Text: "second"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, f.prescriptions.prescriptions, 2)
	})
}
