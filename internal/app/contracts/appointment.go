package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
	"time"
)

type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Statuses  []string
	// Upcoming filters on StartTime >= now when true, < now when false.
	Upcoming *bool
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	Find(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointment *models.Appointment) error

	// FindPatientOverlapping returns the patient's appointments in the given
	// statuses whose [StartTime, EndTime) intersects [start, end).
	FindPatientOverlapping(ctx context.Context, patientID string, start, end time.Time, statuses []string) ([]models.Appointment, error)
	// CountByDoctorDateTime counts the doctor's direct bookings at the exact
	// date and time in the given statuses.
	CountByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string, statuses []string) (int, error)
	// CountBySlot counts appointments referencing the slot, regardless of status.
	CountBySlot(ctx context.Context, slotID string) (int, error)
}
