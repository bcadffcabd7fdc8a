package reports

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

// allowedMimeTypes restricts uploads to formats the extraction boundary
// knows how to handle.
var allowedMimeTypes = map[string]struct{}{
	"text/plain":      {},
	"application/pdf": {},
	"image/png":       {},
	"image/jpeg":      {},
}

type reportUsecase struct {
	ReportRepository contracts.ReportRepository
	Storage          contracts.ObjectStorage
	Queue            contracts.ReportQueue
	SessionService   contracts.SessionService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewReportUsecase(
	reportRepo contracts.ReportRepository,
	storage contracts.ObjectStorage,
	queue contracts.ReportQueue,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) ReportUsecase {
	return &reportUsecase{
		ReportRepository: reportRepo,
		Storage:          storage,
		Queue:            queue,
		SessionService:   sessionService,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *reportUsecase) UploadReport(ctx context.Context, sessionData string, upload *ReportUpload) (*responses.ReportAccepted, error) {
	uc.Log.Info("reportUsecase.UploadReport called")

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if session.Role != constvars.RolePatient || session.PatientID == "" {
		return nil, exceptions.ErrPatientOnly(nil)
	}

	if upload == nil || upload.Size == 0 {
		return nil, exceptions.ErrFileRequired(nil)
	}
	if upload.Size > uc.InternalConfig.Report.MaxUploadSizeInMB*1024*1024 {
		return nil, exceptions.ErrFileTooLarge(nil)
	}
	if _, ok := allowedMimeTypes[upload.MimeType]; !ok {
		return nil, exceptions.ErrFileTypeUnsupported(nil)
	}

	objectName := utils.GenerateObjectName(session.PatientID, upload.Filename)
	if err := uc.Storage.Upload(ctx, objectName, upload.MimeType, upload.Content, upload.Size); err != nil {
		return nil, err
	}

	report := &models.Report{
		PatientID:  session.PatientID,
		Filename:   upload.Filename,
		ObjectName: objectName,
		MimeType:   upload.MimeType,
		FileSize:   upload.Size,
		Status:     constvars.ReportStatusProcessing,
		TimeModel: models.TimeModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}

	job := contracts.ReportJob{
		ReportID:   reportID,
		PatientID:  session.PatientID,
		ObjectName: objectName,
		Filename:   upload.Filename,
		MimeType:   upload.MimeType,
	}
	if err := uc.Queue.Enqueue(ctx, job); err != nil {
		// The row stays visible so the patient can see the failure on poll.
		if markErr := uc.ReportRepository.MarkFailed(ctx, reportID, "failed to queue report for analysis"); markErr != nil {
			uc.Log.Error("reportUsecase.UploadReport mark failed after enqueue error",
				zap.String(constvars.LoggingReportIDKey, reportID),
				zap.Error(markErr))
		}
		return nil, err
	}

	uc.Log.Info("reportUsecase.UploadReport accepted",
		zap.String(constvars.LoggingReportIDKey, reportID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)
	return &responses.ReportAccepted{
		ReportID: reportID,
		Status:   constvars.ReportStatusProcessing,
	}, nil
}

func (uc *reportUsecase) GetReport(ctx context.Context, sessionData, reportID string) (*responses.Report, error) {
	uc.Log.Info("reportUsecase.GetReport called")

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	report, err := uc.ReportRepository.FindByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, exceptions.ErrReportNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && report.PatientID != session.PatientID {
		// Hide foreign reports so IDs cannot be probed.
		return nil, exceptions.ErrReportNotFound(nil)
	}

	return &responses.Report{
		ID:                 report.ID,
		Filename:           report.Filename,
		MimeType:           report.MimeType,
		FileSize:           report.FileSize,
		Status:             report.Status,
		Summary:            report.Summary,
		AbnormalValues:     report.AbnormalValues,
		PossibleConditions: report.PossibleConditions,
		Recommendation:     report.Recommendation,
		Disclaimer:         report.Disclaimer,
		Error:              report.Error,
		CreatedAt:          report.CreatedAt,
		UpdatedAt:          report.UpdatedAt,
	}, nil
}
