package responses

import "time"

type Prescription struct {
	ID              string    `json:"id"`
	AppointmentID   string    `json:"appointmentId"`
	DoctorID        string    `json:"doctorId"`
	DoctorName      string    `json:"doctorName,omitempty"`
	DoctorSpecialty string    `json:"doctorSpecialty,omitempty"`
	Text            string    `json:"text"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
