package jobs

import (
	"fmt"
	"log/slog"

	"bakery/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	queueWatchJob *QueueWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getOrderQueueHandler queries.GetOrderQueueQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		queueWatchJob: NewQueueWatchJob(getOrderQueueHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.queueWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start queue watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.queueWatchJob.Stop()
}
