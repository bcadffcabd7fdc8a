package requests

type UpdateProfile struct {
	Name           string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Specialty      string  `json:"specialty,omitempty" validate:"omitempty,max=100"`
	ClinicLocation string  `json:"clinicLocation,omitempty" validate:"omitempty,max=100"`
	ConsultationFee float64 `json:"consultationFee,omitempty" validate:"omitempty,gte=0"`
}
