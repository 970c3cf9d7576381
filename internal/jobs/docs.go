// Package jobs provides scheduled background tasks for the bakery service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(getOrderQueueHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// QueueWatchJob polls the order queue every 30 seconds and logs a summary
// when orders need attention or are High priority. Because the queue
// projection is derived, not stored, each poll reflects the current
// database state with no cache to invalidate.
package jobs
