package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
	"time"
)

type SlotFilter struct {
	DoctorID string
	Status   string
	// Date restricts results to slots starting within this calendar day.
	Date *time.Time
}

type TimeSlotRepository interface {
	CreateSlot(ctx context.Context, slot *models.TimeSlot) (string, error)
	FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error)
	FindByDoctor(ctx context.Context, filter SlotFilter) ([]models.TimeSlot, error)
	// FindOverlapping returns the doctor's slots intersecting [start, end),
	// excluding excludeID when non-empty.
	FindOverlapping(ctx context.Context, doctorID string, start, end time.Time, excludeID string) ([]models.TimeSlot, error)
	UpdateSlot(ctx context.Context, slot *models.TimeSlot) error
	DeleteSlot(ctx context.Context, slotID string) error

	// MarkBooked flips the slot from AVAILABLE to BOOKED as a single
	// conditional update. It reports false when another booking won the race.
	MarkBooked(ctx context.Context, slotID string) (bool, error)
	// Release flips the slot back to AVAILABLE.
	Release(ctx context.Context, slotID string) error
}
