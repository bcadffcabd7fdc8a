package slots

import (
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"context"
)

type SlotUsecase interface {
	CreateSlot(ctx context.Context, sessionData string, request *requests.CreateTimeSlot) (*responses.TimeSlot, error)
	// ListDoctorSlots lists a doctor's slots, optionally filtered by status and
	// a calendar date in YYYY-MM-DD form.
	ListDoctorSlots(ctx context.Context, doctorID, status, date string) ([]responses.TimeSlot, error)
	UpdateSlot(ctx context.Context, sessionData, slotID string, request *requests.UpdateTimeSlot) (*responses.TimeSlot, error)
	DeleteSlot(ctx context.Context, sessionData, slotID string) error
}
