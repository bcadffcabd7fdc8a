package responses

type Login struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserProfile struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Username        string  `json:"username"`
	Role            string  `json:"role"`
	DoctorID        string  `json:"doctorId,omitempty"`
	PatientID       string  `json:"patientId,omitempty"`
	Specialty       string  `json:"specialty,omitempty"`
	ClinicLocation  string  `json:"clinicLocation,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty"`
}
