package routers

import (
	"carexpert-service/internal/app/delivery/http/middlewares"
	"carexpert-service/internal/app/services/core/reports"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.With(middlewares.Authenticate).Post("/", reportController.UploadReport)
	router.With(middlewares.Authenticate).Get("/{reportID}", reportController.GetReport)
}
