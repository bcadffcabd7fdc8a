package requests

type SymptomCheck struct {
	Symptoms string `json:"symptoms" validate:"required,min=3,max=5000"`
}
