package appointments

import (
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, sessionData string, request *requests.BookAppointment) (*responses.Appointment, error)
	BookDirectAppointment(ctx context.Context, sessionData string, request *requests.BookDirectAppointment) (*responses.Appointment, error)
	// ListAppointments returns the caller's appointments, doctors see their
	// schedule and patients their bookings.
	ListAppointments(ctx context.Context, sessionData string, statuses []string, upcoming *bool) ([]responses.Appointment, error)
	RespondAppointment(ctx context.Context, sessionData, appointmentID string, request *requests.RespondAppointment) (*responses.Appointment, error)
	CancelAppointment(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error)
	CompleteAppointment(ctx context.Context, sessionData, appointmentID string) (*responses.Appointment, error)
	AddPrescription(ctx context.Context, sessionData, appointmentID string, request *requests.AddPrescription) (*responses.Prescription, error)
}
