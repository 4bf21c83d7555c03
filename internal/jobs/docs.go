// Package jobs provides scheduled background tasks for the capacity service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level specs and are
// started and stopped together through JobManager:
//
//	jobManager := jobs.NewJobManager(catalogRefreshJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// CatalogRefreshJob reloads the technology catalog into the Redis cache. It is
// only created when the cache is enabled. A failed refresh is logged and the
// previous cached catalog stays in place until its TTL expires.
package jobs
