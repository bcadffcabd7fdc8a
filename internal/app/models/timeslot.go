package models

import "time"

type TimeSlot struct {
	ID              string    `bson:"_id,omitempty"`
	DoctorID        string    `bson:"doctorId"`
	StartTime       time.Time `bson:"startTime"`
	EndTime         time.Time `bson:"endTime"`
	Status          string    `bson:"status"`
	ConsultationFee float64   `bson:"consultationFee"`
	TimeModel       `bson:",inline"`
}
