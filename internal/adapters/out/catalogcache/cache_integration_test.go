package catalogcache_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"capacity/internal/adapters/out/catalogcache"
	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/domain/model/technology"
	"capacity/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type MockTechnologyService struct{ mock.Mock }

func (m *MockTechnologyService) FindAll(ctx context.Context) ([]*technology.Technology, error) {
	args := m.Called(ctx)
	ts, _ := args.Get(0).([]*technology.Technology)
	return ts, args.Error(1)
}

func (m *MockTechnologyService) FindByCapacityID(ctx context.Context, capacityID kernel.ID) ([]*technology.Technology, error) {
	args := m.Called(ctx, capacityID)
	ts, _ := args.Get(0).([]*technology.Technology)
	return ts, args.Error(1)
}

func (m *MockTechnologyService) AssociateTechnology(
	ctx context.Context, assoc technology.CapacityTechnology,
) (*technology.Technology, error) {
	args := m.Called(ctx, assoc)
	t, _ := args.Get(0).(*technology.Technology)
	return t, args.Error(1)
}

func (m *MockTechnologyService) DeleteTechnologiesByCapacity(ctx context.Context, capacityID kernel.ID) ([]kernel.ID, error) {
	args := m.Called(ctx, capacityID)
	ids, _ := args.Get(0).([]kernel.ID)
	return ids, args.Error(1)
}

// CatalogCacheIntegrationTestSuite runs the catalog cache against a Redis container.
type CatalogCacheIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	next      *MockTechnologyService
	cache     *catalogcache.CachedTechnologyService
}

func (suite *CatalogCacheIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.rdb = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.rdb.Ping(ctx).Err())
}

func (suite *CatalogCacheIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.rdb.FlushDB(context.Background()).Err())
	suite.next = new(MockTechnologyService)
	suite.cache = catalogcache.New(suite.next, suite.rdb, slog.New(slog.DiscardHandler),
		catalogcache.WithKey("test:catalog"),
		catalogcache.WithTTL(time.Minute),
	)
}

func (suite *CatalogCacheIntegrationTestSuite) TearDownSuite() {
	if suite.rdb != nil {
		suite.Require().NoError(suite.rdb.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogCacheIntegrationTestSuite) TestFindAll_StoresServiceCatalog() {
	ctx := context.Background()
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go", "Rust"), nil).Once()

	techs, err := suite.cache.FindAll(ctx)

	suite.Require().NoError(err)
	suite.Len(techs, 2)
	ttl, err := suite.rdb.TTL(ctx, "test:catalog").Result()
	suite.Require().NoError(err)
	suite.Positive(ttl)
}

func (suite *CatalogCacheIntegrationTestSuite) TestFindAll_SeesTechnologiesAddedAfterStore() {
	ctx := context.Background()
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go"), nil).Once()
	_, err := suite.cache.FindAll(ctx)
	suite.Require().NoError(err)

	suite.next.On("FindAll", ctx).Return(suite.catalog("Go", "Kafka"), nil).Once()
	techs, err := suite.cache.FindAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(techs, 2)
	suite.Equal("Kafka", techs[1].Name().Value())
	suite.next.AssertNumberOfCalls(suite.T(), "FindAll", 2)
}

func (suite *CatalogCacheIntegrationTestSuite) TestFindAll_ServesStoredCatalogWhenServiceFails() {
	ctx := context.Background()
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go", "Rust"), nil).Once()
	_, err := suite.cache.FindAll(ctx)
	suite.Require().NoError(err)

	suite.next.On("FindAll", ctx).Return(nil, errors.New("technology service unavailable")).Once()
	techs, err := suite.cache.FindAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(techs, 2)
	suite.Equal("Go", techs[0].Name().Value())
	suite.Equal(int64(2), techs[1].ID().Value())
}

func (suite *CatalogCacheIntegrationTestSuite) TestFindAll_BusinessErrorIsReturned() {
	ctx := context.Background()
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go"), nil).Once()
	_, err := suite.cache.FindAll(ctx)
	suite.Require().NoError(err)

	rejected := errs.NewBusinessRuleViolationError("CatalogRejected", "catalog rejected")
	suite.next.On("FindAll", ctx).Return(nil, rejected).Once()
	_, err = suite.cache.FindAll(ctx)

	suite.Require().ErrorIs(err, rejected)
}

func (suite *CatalogCacheIntegrationTestSuite) TestFindAll_ServiceErrorWithoutStoredCatalog() {
	ctx := context.Background()
	upstreamErr := errors.New("technology service unavailable")
	suite.next.On("FindAll", ctx).Return(nil, upstreamErr).Once()

	_, err := suite.cache.FindAll(ctx)
	suite.Require().ErrorIs(err, upstreamErr)

	exists, err := suite.rdb.Exists(ctx, "test:catalog").Result()
	suite.Require().NoError(err)
	suite.Zero(exists)
}

func (suite *CatalogCacheIntegrationTestSuite) TestRefresh_ReplacesStoredCatalog() {
	ctx := context.Background()
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go"), nil).Once()
	_, err := suite.cache.Refresh(ctx)
	suite.Require().NoError(err)
	suite.next.On("FindAll", ctx).Return(suite.catalog("Go", "Kafka"), nil).Once()
	_, err = suite.cache.Refresh(ctx)
	suite.Require().NoError(err)

	suite.next.On("FindAll", ctx).Return(nil, errors.New("timeout")).Once()
	techs, err := suite.cache.FindAll(ctx)

	suite.Require().NoError(err)
	suite.Len(techs, 2)
}

func (suite *CatalogCacheIntegrationTestSuite) TestOtherCallsPassThrough() {
	ctx := context.Background()
	id := kernel.MustNewID(4)
	suite.next.On("FindByCapacityID", ctx, id).Return(suite.catalog("Go"), nil).Once()

	techs, err := suite.cache.FindByCapacityID(ctx, id)

	suite.Require().NoError(err)
	suite.Len(techs, 1)
	suite.next.AssertExpectations(suite.T())
}

func (suite *CatalogCacheIntegrationTestSuite) catalog(names ...string) []*technology.Technology {
	out := make([]*technology.Technology, 0, len(names))
	for i, name := range names {
		t, err := technology.NewTechnology(int64(i+1), name, name+" description")
		suite.Require().NoError(err)
		out = append(out, t)
	}
	return out
}

func TestCatalogCacheIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogCacheIntegrationTestSuite))
}
