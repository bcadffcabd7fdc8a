package contracts

import (
	"carexpert-service/internal/app/models"
	"context"
)

type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.Report) (string, error)
	FindByID(ctx context.Context, reportID string) (*models.Report, error)
	// MarkCompleted persists the analysis result and flips status to COMPLETED.
	MarkCompleted(ctx context.Context, reportID, extractedText string, analysis *ReportAnalysis) error
	// MarkFailed records the failure reason and flips status to FAILED.
	MarkFailed(ctx context.Context, reportID, errMessage string) error
}
