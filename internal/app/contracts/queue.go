package contracts

import "context"

// ReportJob is the payload carried through the report analysis queue.
type ReportJob struct {
	ReportID    string `json:"report_id"`
	PatientID   string `json:"patient_id"`
	ObjectName  string `json:"object_name"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
	FailedCount int    `json:"failed_count"`
}

// ReportQueue is the producer side of the analysis pipeline. The consumer
// side lives in the worker, which talks to the queue service directly.
type ReportQueue interface {
	Enqueue(ctx context.Context, job ReportJob) error
}
