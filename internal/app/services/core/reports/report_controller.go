package reports

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	ReportUsecase  ReportUsecase
}

func NewReportController(logger *zap.Logger, internalConfig *config.InternalConfig, reportUsecase ReportUsecase) *ReportController {
	return &ReportController{
		Log:            logger,
		InternalConfig: internalConfig,
		ReportUsecase:  reportUsecase,
	}
}

func (ctrl *ReportController) UploadReport(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ReportController.UploadReport called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	maxBytes := ctrl.InternalConfig.Report.MaxUploadSizeInMB * 1024 * 1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileRequired(err))
		return
	}
	defer file.Close()

	upload := &ReportUpload{
		Filename: header.Filename,
		MimeType: header.Header.Get(constvars.HeaderContentType),
		Size:     header.Size,
		Content:  file,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.UploadReport(ctx, sessionData, upload)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.ReportAcceptedMessage, result)
}

func (ctrl *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("ReportController.GetReport called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	reportID := chi.URLParam(r, "reportID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReportUsecase.GetReport(ctx, sessionData, reportID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccess, result)
}
