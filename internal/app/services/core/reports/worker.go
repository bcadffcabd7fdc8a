package reports

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/services/shared/reportqueue"
	"carexpert-service/internal/pkg/constvars"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultPollInterval = 2 * time.Second

// jobQueue is the consumer side of the analysis queue, satisfied by
// reportqueue.Service.
type jobQueue interface {
	FetchN(ctx context.Context, max int) ([]reportqueue.QueuedItem, error)
	AckMessage(ctx context.Context, deliveryTag uint64) error
	Reenqueue(ctx context.Context, job contracts.ReportJob) error
	EnqueueToDeadQueue(ctx context.Context, job contracts.ReportJob) error
}

// Worker drains the report queue with bounded concurrency. Every job ends in
// exactly one of: COMPLETED, requeued with an incremented failure count, or
// dead-lettered with the report marked FAILED.
type Worker struct {
	Queue            jobQueue
	ReportRepository contracts.ReportRepository
	Storage          contracts.ObjectStorage
	Extractor        contracts.TextExtractor
	AIClient         contracts.AIClient
	Log              *zap.Logger

	workerCount  int
	maxRetries   int
	pollInterval time.Duration
}

func NewWorker(
	queue jobQueue,
	reportRepo contracts.ReportRepository,
	storage contracts.ObjectStorage,
	extractor contracts.TextExtractor,
	aiClient contracts.AIClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Worker {
	workerCount := internalConfig.Report.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}
	maxRetries := internalConfig.Report.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}
	return &Worker{
		Queue:            queue,
		ReportRepository: reportRepo,
		Storage:          storage,
		Extractor:        extractor,
		AIClient:         aiClient,
		Log:              logger,
		workerCount:      workerCount,
		maxRetries:       maxRetries,
		pollInterval:     defaultPollInterval,
	}
}

// Run polls the queue until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	w.Log.Info("reports.Worker started",
		zap.Int("worker_count", w.workerCount),
		zap.Int("max_retries", w.maxRetries),
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Log.Info("reports.Worker stopped")
			return
		case <-ticker.C:
			w.drainOnce(ctx)
		}
	}
}

// drainOnce fetches up to workerCount jobs and processes them concurrently.
func (w *Worker) drainOnce(ctx context.Context) {
	items, err := w.Queue.FetchN(ctx, w.workerCount)
	if err != nil {
		w.Log.Error("reports.Worker fetch failed", zap.Error(err))
		return
	}
	if len(items) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, item := range items {
		wg.Add(1)
		go func(item reportqueue.QueuedItem) {
			defer wg.Done()
			w.handle(ctx, item)
		}(item)
	}
	wg.Wait()
}

func (w *Worker) handle(ctx context.Context, item reportqueue.QueuedItem) {
	job := item.Job
	err, retryable := w.process(ctx, job)
	if err == nil {
		if ackErr := w.Queue.AckMessage(ctx, item.DeliveryTag); ackErr != nil {
			w.Log.Error("reports.Worker ack failed",
				zap.String(constvars.LoggingReportIDKey, job.ReportID),
				zap.Error(ackErr))
		}
		return
	}

	job.FailedCount++
	w.Log.Warn("reports.Worker job failed",
		zap.String(constvars.LoggingReportIDKey, job.ReportID),
		zap.Int("failed_count", job.FailedCount),
		zap.Bool("retryable", retryable),
		zap.Error(err),
	)

	if retryable && job.FailedCount < w.maxRetries {
		if requeueErr := w.Queue.Reenqueue(ctx, job); requeueErr != nil {
			w.Log.Error("reports.Worker requeue failed",
				zap.String(constvars.LoggingReportIDKey, job.ReportID),
				zap.Error(requeueErr))
			return
		}
	} else {
		if dlqErr := w.Queue.EnqueueToDeadQueue(ctx, job); dlqErr != nil {
			w.Log.Error("reports.Worker dead-letter failed",
				zap.String(constvars.LoggingReportIDKey, job.ReportID),
				zap.Error(dlqErr))
			return
		}
		if markErr := w.ReportRepository.MarkFailed(ctx, job.ReportID, err.Error()); markErr != nil {
			w.Log.Error("reports.Worker mark failed",
				zap.String(constvars.LoggingReportIDKey, job.ReportID),
				zap.Error(markErr))
		}
	}

	if ackErr := w.Queue.AckMessage(ctx, item.DeliveryTag); ackErr != nil {
		w.Log.Error("reports.Worker ack failed",
			zap.String(constvars.LoggingReportIDKey, job.ReportID),
			zap.Error(ackErr))
	}
}

// process runs one job end to end. The second return reports whether a
// failure is worth retrying: extraction is deterministic, downloads and AI
// calls are not.
func (w *Worker) process(ctx context.Context, job contracts.ReportJob) (error, bool) {
	object, err := w.Storage.Download(ctx, job.ObjectName)
	if err != nil {
		return err, true
	}
	defer object.Close()

	text, err := w.Extractor.Extract(ctx, job.MimeType, object)
	if err != nil {
		return err, false
	}

	analysis, err := w.AIClient.AnalyzeReport(ctx, text)
	if err != nil {
		return err, true
	}

	if err := w.ReportRepository.MarkCompleted(ctx, job.ReportID, text, analysis); err != nil {
		return err, true
	}

	w.Log.Info("reports.Worker job completed",
		zap.String(constvars.LoggingReportIDKey, job.ReportID))
	return nil, false
}
