package responses

type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	ClinicLocation  string  `json:"clinicLocation"`
	ConsultationFee float64 `json:"consultationFee"`
}
