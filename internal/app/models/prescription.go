package models

// Prescription is immutable once written. Corrections are issued as new
// prescriptions rather than edits.
type Prescription struct {
	ID            string `bson:"_id,omitempty"`
	AppointmentID string `bson:"appointmentId"`
	DoctorID      string `bson:"doctorId"`
	PatientID     string `bson:"patientId"`
	Text          string `bson:"text"`
	Notes         string `bson:"notes,omitempty"`
	TimeModel     `bson:",inline"`
}
