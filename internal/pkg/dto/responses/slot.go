package responses

import "time"

type TimeSlot struct {
	ID              string    `json:"id"`
	DoctorID        string    `json:"doctorId"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	Status          string    `json:"status"`
	ConsultationFee float64   `json:"consultationFee"`
}
