package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	Username  string `bson:"username"`
	Password  string `bson:"password"`
	Role      string `bson:"role"`
	DoctorID  string `bson:"doctorId,omitempty"`
	PatientID string `bson:"patientId,omitempty"`
	TimeModel `bson:",inline"`
}

type Doctor struct {
	ID              string  `bson:"_id,omitempty"`
	UserID          string  `bson:"userId"`
	Name            string  `bson:"name"`
	Specialty       string  `bson:"specialty"`
	ClinicLocation  string  `bson:"clinicLocation"`
	ConsultationFee float64 `bson:"consultationFee"`
	TimeModel       `bson:",inline"`
}

type Patient struct {
	ID        string `bson:"_id,omitempty"`
	UserID    string `bson:"userId"`
	Name      string `bson:"name"`
	TimeModel `bson:",inline"`
}
