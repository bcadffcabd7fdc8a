package responses

import "time"

type SymptomAnalysis struct {
	ID             string    `json:"id,omitempty"`
	ProbableCauses []string  `json:"probable_causes"`
	Severity       string    `json:"severity"`
	Recommendation string    `json:"recommendation"`
	Disclaimer     string    `json:"disclaimer"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
}

type AiChat struct {
	ID             string    `json:"id"`
	Symptoms       string    `json:"symptoms"`
	ProbableCauses []string  `json:"probable_causes"`
	Severity       string    `json:"severity"`
	Recommendation string    `json:"recommendation"`
	Disclaimer     string    `json:"disclaimer"`
	CreatedAt      time.Time `json:"createdAt"`
}
