package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

// SymptomAnalysis is the structured result of the triage prompt.
type SymptomAnalysis struct {
	ProbableCauses []string `json:"probable_causes"`
	Severity       string   `json:"severity"`
	Recommendation string   `json:"recommendation"`
	Disclaimer     string   `json:"disclaimer"`
}

// ReportAnalysis is the structured result of the medical report prompt.
type ReportAnalysis struct {
	Summary            string                 `json:"summary"`
	AbnormalValues     []models.AbnormalValue `json:"abnormal_values"`
	PossibleConditions []string               `json:"possible_conditions"`
	Recommendation     string                 `json:"recommendation"`
	Disclaimer         string                 `json:"disclaimer"`
}

type AIClient interface {
	AnalyzeSymptoms(ctx context.Context, symptoms string) (*SymptomAnalysis, error)
	AnalyzeReport(ctx context.Context, reportText string) (*ReportAnalysis, error)
}
