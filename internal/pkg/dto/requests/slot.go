package requests

type CreateTimeSlot struct {
	StartTime       string  `json:"startTime" validate:"required"`
	EndTime         string  `json:"endTime" validate:"required"`
	ConsultationFee float64 `json:"consultationFee,omitempty" validate:"omitempty,gte=0"`
}

type UpdateTimeSlot struct {
	StartTime       string  `json:"startTime,omitempty"`
	EndTime         string  `json:"endTime,omitempty"`
	ConsultationFee float64 `json:"consultationFee,omitempty" validate:"omitempty,gte=0"`
}
