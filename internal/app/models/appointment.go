package models

import (
	"carexpert-service/internal/pkg/constvars"
	"time"
)

// Appointment is the single booking entity. Slot-based bookings carry
// TimeSlotID plus StartTime/EndTime copied from the slot; direct bookings
// carry Date and Time strings instead. Appointments are never deleted.
type Appointment struct {
	ID              string     `bson:"_id,omitempty"`
	PatientID       string     `bson:"patientId"`
	DoctorID        string     `bson:"doctorId"`
	TimeSlotID      string     `bson:"timeSlotId,omitempty"`
	StartTime       *time.Time `bson:"startTime,omitempty"`
	EndTime         *time.Time `bson:"endTime,omitempty"`
	Date            string     `bson:"date,omitempty"`
	Time            string     `bson:"time,omitempty"`
	Type            string     `bson:"type"`
	Status          string     `bson:"status"`
	Notes           string     `bson:"notes,omitempty"`
	ConsultationFee float64    `bson:"consultationFee"`
	PrescriptionID  string     `bson:"prescriptionId,omitempty"`
	TimeModel       `bson:",inline"`
}

// IsFinal reports whether the appointment reached a terminal status.
func (a *Appointment) IsFinal() bool {
	switch a.Status {
	case constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled,
		constvars.AppointmentStatusRejected:
		return true
	}
	return false
}
