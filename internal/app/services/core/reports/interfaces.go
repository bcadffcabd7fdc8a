package reports

import (
	"carexpert-service/internal/pkg/dto/responses"
	"context"
	"io"
)

// ReportUpload carries the file part of a multipart upload into the usecase.
type ReportUpload struct {
	Filename string
	MimeType string
	Size     int64
	Content  io.Reader
}

type ReportUsecase interface {
	// UploadReport stores the file, records the report as PROCESSING, and
	// enqueues it for background analysis.
	UploadReport(ctx context.Context, sessionData string, upload *ReportUpload) (*responses.ReportAccepted, error)
	GetReport(ctx context.Context, sessionData, reportID string) (*responses.Report, error)
}
