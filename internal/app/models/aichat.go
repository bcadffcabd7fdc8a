package models

type AiChat struct {
	ID             string   `bson:"_id,omitempty"`
	UserID         string   `bson:"userId"`
	Symptoms       string   `bson:"symptoms"`
	ProbableCauses []string `bson:"probableCauses"`
	Severity       string   `bson:"severity"`
	Recommendation string   `bson:"recommendation"`
	Disclaimer     string   `bson:"disclaimer"`
	TimeModel      `bson:",inline"`
}
