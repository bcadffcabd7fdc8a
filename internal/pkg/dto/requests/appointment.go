package requests

type BookAppointment struct {
	TimeSlotID string `json:"timeSlotId" validate:"required"`
	Type       string `json:"type,omitempty" validate:"omitempty,oneof=ONLINE OFFLINE"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type BookDirectAppointment struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=ONLINE OFFLINE"`
	Notes    string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

type RespondAppointment struct {
	Action string `json:"action" validate:"required,oneof=accept reject"`
	// Reason is stored into the appointment notes on rejection.
	Reason string `json:"reason,omitempty" validate:"omitempty,max=1000"`
	// AlternativeSlotIDs optionally suggests other slots in the rejection notification.
	AlternativeSlotIDs []string `json:"alternativeSlotIds,omitempty"`
}

type AddPrescription struct {
	Text  string `json:"text" validate:"required,max=5000"`
	Notes string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
