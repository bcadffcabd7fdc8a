package responses

import "time"

type Appointment struct {
	ID              string     `json:"id"`
	PatientID       string     `json:"patientId"`
	PatientName     string     `json:"patientName,omitempty"`
	DoctorID        string     `json:"doctorId"`
	DoctorName      string     `json:"doctorName,omitempty"`
	TimeSlotID      string     `json:"timeSlotId,omitempty"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	Date            string     `json:"date,omitempty"`
	Time            string     `json:"time,omitempty"`
	Type            string     `json:"type"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	ConsultationFee float64    `json:"consultationFee"`
	PrescriptionID  string     `json:"prescriptionId,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
