package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpadapter "capacity/internal/adapters/in/http"
	"capacity/internal/adapters/out/catalogcache"
	"capacity/internal/adapters/out/postgres/capacityrepo"
	"capacity/internal/adapters/out/technologyclient"
	"capacity/internal/core/application/usecases/commands"
	"capacity/internal/core/application/usecases/queries"
	"capacity/internal/core/ports"
	"capacity/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs           Config
	logger            *slog.Logger
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService

	// Set only when the catalog cache is enabled.
	redisClient  *redis.Client
	catalogCache *catalogcache.CachedTechnologyService
}

// NewCompositionRoot wires the adapters. When REDIS_ADDR is set the technology
// catalog is served from Redis; Redis must answer a ping at startup.
func NewCompositionRoot(ctx context.Context, configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	client, err := technologyclient.New(configs.TechnologyClientConfig(), logger)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		configs:           configs,
		logger:            logger,
		capacityRepo:      capacityrepo.NewGormCapacityRepository(gormDB),
		technologyService: client,
	}

	if configs.CatalogCacheEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
			DB:       configs.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, errors.Join(err, rdb.Close())
		}

		root.redisClient = rdb
		root.catalogCache = catalogcache.New(client, rdb, logger, catalogcache.WithTTL(configs.CatalogCacheTTL))
		root.technologyService = root.catalogCache
	}

	return root, nil
}

func (c *CompositionRoot) CreateCreateCapacityCommandHandler() commands.CreateCapacityCommandHandler {
	return commands.NewCreateCapacityCommandHandler(c.capacityRepo, c.technologyService, c.logger)
}

func (c *CompositionRoot) CreateAssociateCapacityWithBootcampCommandHandler() commands.AssociateCapacityWithBootcampCommandHandler {
	return commands.NewAssociateCapacityWithBootcampCommandHandler(c.capacityRepo, c.technologyService)
}

func (c *CompositionRoot) CreateDeleteCapacitiesByBootcampCommandHandler() commands.DeleteCapacitiesByBootcampCommandHandler {
	return commands.NewDeleteCapacitiesByBootcampCommandHandler(c.capacityRepo, c.technologyService, c.logger)
}

func (c *CompositionRoot) CreateListCapacitiesQueryHandler() queries.ListCapacitiesQueryHandler {
	return queries.NewListCapacitiesQueryHandler(c.capacityRepo, c.technologyService)
}

func (c *CompositionRoot) CreateGetCapacitiesByBootcampQueryHandler() queries.GetCapacitiesByBootcampQueryHandler {
	return queries.NewGetCapacitiesByBootcampQueryHandler(c.capacityRepo, c.technologyService)
}

func (c *CompositionRoot) CreateListCapacityIDsQueryHandler() queries.ListCapacityIDsQueryHandler {
	return queries.NewListCapacityIDsQueryHandler(c.capacityRepo)
}

// CreateRouter builds the HTTP entry point over every use case.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	create := c.CreateCreateCapacityCommandHandler()
	associate := c.CreateAssociateCapacityWithBootcampCommandHandler()
	release := c.CreateDeleteCapacitiesByBootcampCommandHandler()

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateCapacity:                &create,
		AssociateCapacityWithBootcamp: &associate,
		DeleteCapacitiesByBootcamp:    &release,
		ListCapacities:                c.CreateListCapacitiesQueryHandler(),
		GetCapacitiesByBootcamp:       c.CreateGetCapacitiesByBootcampQueryHandler(),
		ListCapacityIDs:               c.CreateListCapacityIDsQueryHandler(),
	}, c.logger)

	return httpadapter.NewRouter(server, c.logger)
}

// CreateJobManager returns the background jobs. The catalog refresh job only
// exists when the catalog cache is enabled.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	if c.catalogCache == nil {
		return jobs.NewJobManager()
	}

	return jobs.NewJobManager(
		jobs.NewCatalogRefreshJob(
			c.catalogCache,
			c.configs.CatalogRefreshSpec,
			c.configs.CatalogRefreshTimeout(),
			c.logger,
		),
	)
}

// Close releases the connections opened by NewCompositionRoot.
func (c *CompositionRoot) Close() error {
	if c.redisClient == nil {
		return nil
	}
	return c.redisClient.Close()
}
