package responses

import (
	"carexpert-service/internal/app/models"
	"time"
)

type ReportAccepted struct {
	ReportID string `json:"reportId"`
	Status   string `json:"status"`
}

type Report struct {
	ID                 string                 `json:"id"`
	Filename           string                 `json:"filename"`
	MimeType           string                 `json:"mimeType"`
	FileSize           int64                  `json:"fileSize"`
	Status             string                 `json:"status"`
	Summary            string                 `json:"summary,omitempty"`
	AbnormalValues     []models.AbnormalValue `json:"abnormal_values,omitempty"`
	PossibleConditions []string               `json:"possible_conditions,omitempty"`
	Recommendation     string                 `json:"recommendation,omitempty"`
	Disclaimer         string                 `json:"disclaimer,omitempty"`
	Error              string                 `json:"error,omitempty"`
	CreatedAt          time.Time              `json:"createdAt"`
	UpdatedAt          time.Time              `json:"updatedAt"`
}
