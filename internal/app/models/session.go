package models

type Session struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	DoctorID  string `json:"doctor_id,omitempty"`
	PatientID string `json:"patient_id,omitempty"`
}
