package requests

type Signup struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Password       string `json:"password" validate:"required,password"`
	Role           string `json:"role" validate:"required,user_type"`
	Specialty      string `json:"specialty,omitempty"`
	ClinicLocation string `json:"clinicLocation,omitempty"`
}

type Login struct {
	// EmailOrUsername accepts either identifier; matching is case-insensitive.
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}
