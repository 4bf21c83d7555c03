package jobs

import (
	"context"
	"log/slog"
	"time"

	"capacity/internal/core/domain/model/technology"

	"github.com/robfig/cron/v3"
)

// DefaultCatalogRefreshSpec reloads the catalog once a minute.
const DefaultCatalogRefreshSpec = "@every 1m"

// CatalogRefresher reloads the technology catalog into the cache.
type CatalogRefresher interface {
	Refresh(ctx context.Context) ([]*technology.Technology, error)
}

// CatalogRefreshJob keeps the stored fallback catalog recent while no capacity
// is being created.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	spec      string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCatalogRefreshJob creates the job. An empty spec means DefaultCatalogRefreshSpec.
// Each run is bounded by timeout (no bound when timeout <= 0).
func NewCatalogRefreshJob(
	refresher CatalogRefresher,
	spec string,
	timeout time.Duration,
	logger *slog.Logger,
) *CatalogRefreshJob {
	if spec == "" {
		spec = DefaultCatalogRefreshSpec
	}
	return &CatalogRefreshJob{
		refresher: refresher,
		spec:      spec,
		timeout:   timeout,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

// Start schedules the job. It fails on an invalid cron spec.
func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "spec", j.spec)
	return nil
}

// Run performs one refresh.
func (j *CatalogRefreshJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	techs, err := j.refresher.Refresh(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Catalog refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Catalog refreshed", "technologies", len(techs))
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}
