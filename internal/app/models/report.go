package models

type AbnormalValue struct {
	Term        string `bson:"term" json:"term"`
	Value       string `bson:"value" json:"value"`
	NormalRange string `bson:"normalRange" json:"normal_range"`
	Issue       string `bson:"issue" json:"issue"`
}

type Report struct {
	ID                 string          `bson:"_id,omitempty"`
	PatientID          string          `bson:"patientId"`
	Filename           string          `bson:"filename"`
	ObjectName         string          `bson:"objectName"`
	MimeType           string          `bson:"mimeType"`
	FileSize           int64           `bson:"fileSize"`
	Status             string          `bson:"status"`
	ExtractedText      string          `bson:"extractedText,omitempty"`
	Summary            string          `bson:"summary,omitempty"`
	AbnormalValues     []AbnormalValue `bson:"abnormalValues,omitempty"`
	PossibleConditions []string        `bson:"possibleConditions,omitempty"`
	Recommendation     string          `bson:"recommendation,omitempty"`
	Disclaimer         string          `bson:"disclaimer,omitempty"`
	Error              string          `bson:"error,omitempty"`
	TimeModel          `bson:",inline"`
}
