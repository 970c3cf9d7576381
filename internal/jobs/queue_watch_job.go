package jobs

import (
	"context"
	"log/slog"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// QueueWatchJob periodically re-derives the production queue and logs an
// operational summary: how many orders need attention and how many are
// High priority. The projection is recomputed from scratch on every poll;
// nothing is cached between runs.
type QueueWatchJob struct {
	handler queries.GetOrderQueueQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQueueWatchJob creates a job that polls the order queue every 30
// seconds.
func NewQueueWatchJob(handler queries.GetOrderQueueQueryHandler, logger *slog.Logger) *QueueWatchJob {
	return &QueueWatchJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "queue_watch_job"),
	}
}

// Start begins the queue watch job.
func (j *QueueWatchJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOrderQueueQuery()

		items, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue watch poll failed", "error", err)
			return
		}

		var needsAttention, highPriority int
		for _, item := range items {
			if item.NeedsAttention {
				needsAttention++
			}
			if item.Priority == services.PriorityHigh && item.Status == services.StatusInProduction {
				highPriority++
			}
		}

		if needsAttention > 0 || highPriority > 0 {
			j.logger.InfoContext(ctx, "Queue status",
				"total", len(items),
				"needs_attention", needsAttention,
				"high_priority", highPriority,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue watch job started (polling every 30 seconds)")
	return nil
}

// Stop stops the queue watch job.
func (j *QueueWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue watch job stopped")
}
