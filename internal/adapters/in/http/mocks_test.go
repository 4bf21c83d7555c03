package http_test

import (
	"context"
	"log/slog"
	"testing"

	httpadapter "capacity/internal/adapters/in/http"
	"capacity/internal/core/application/usecases/commands"
	"capacity/internal/core/application/usecases/queries"
	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateCapacityHandler struct{ mock.Mock }

func (m *MockCreateCapacityHandler) Handle(
	ctx context.Context,
	cmd commands.CreateCapacityCommand,
) (responses.CapacityResponse, error) {
	args := m.Called(ctx, cmd)
	response, _ := args.Get(0).(responses.CapacityResponse)
	return response, args.Error(1)
}

type MockAssociateCapacityWithBootcampHandler struct{ mock.Mock }

func (m *MockAssociateCapacityWithBootcampHandler) Handle(
	ctx context.Context,
	cmd commands.AssociateCapacityWithBootcampCommand,
) (responses.AssociateCapacityWithBootcampResponse, error) {
	args := m.Called(ctx, cmd)
	response, _ := args.Get(0).(responses.AssociateCapacityWithBootcampResponse)
	return response, args.Error(1)
}

type MockDeleteCapacitiesByBootcampHandler struct{ mock.Mock }

func (m *MockDeleteCapacitiesByBootcampHandler) Handle(
	ctx context.Context,
	cmd commands.DeleteCapacitiesByBootcampCommand,
) ([]kernel.ID, error) {
	args := m.Called(ctx, cmd)
	ids, _ := args.Get(0).([]kernel.ID)
	return ids, args.Error(1)
}

type MockListCapacitiesHandler struct{ mock.Mock }

func (m *MockListCapacitiesHandler) Handle(
	ctx context.Context,
	query queries.ListCapacitiesQuery,
) (responses.GetCapacitiesResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).(responses.GetCapacitiesResponse)
	return response, args.Error(1)
}

type MockGetCapacitiesByBootcampHandler struct{ mock.Mock }

func (m *MockGetCapacitiesByBootcampHandler) Handle(
	ctx context.Context,
	query queries.GetCapacitiesByBootcampQuery,
) ([]responses.CapacityResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).([]responses.CapacityResponse)
	return response, args.Error(1)
}

type MockListCapacityIDsHandler struct{ mock.Mock }

func (m *MockListCapacityIDsHandler) Handle(ctx context.Context, query queries.ListCapacityIDsQuery) ([]int64, error) {
	args := m.Called(ctx, query)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

type mocks struct {
	create     *MockCreateCapacityHandler
	associate  *MockAssociateCapacityWithBootcampHandler
	release    *MockDeleteCapacitiesByBootcampHandler
	list       *MockListCapacitiesHandler
	byBootcamp *MockGetCapacitiesByBootcampHandler
	ids        *MockListCapacityIDsHandler
}

func newMocks() mocks {
	return mocks{
		create:     &MockCreateCapacityHandler{},
		associate:  &MockAssociateCapacityWithBootcampHandler{},
		release:    &MockDeleteCapacitiesByBootcampHandler{},
		list:       &MockListCapacitiesHandler{},
		byBootcamp: &MockGetCapacitiesByBootcampHandler{},
		ids:        &MockListCapacityIDsHandler{},
	}
}

func (m mocks) handlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateCapacity:                m.create,
		AssociateCapacityWithBootcamp: m.associate,
		DeleteCapacitiesByBootcamp:    m.release,
		ListCapacities:                m.list,
		GetCapacitiesByBootcamp:       m.byBootcamp,
		ListCapacityIDs:               m.ids,
	}
}

func (m mocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.create.AssertExpectations(t)
	m.associate.AssertExpectations(t)
	m.release.AssertExpectations(t)
	m.list.AssertExpectations(t)
	m.byBootcamp.AssertExpectations(t)
	m.ids.AssertExpectations(t)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// newRouter builds the full router, OpenAPI validation included.
func newRouter(t *testing.T, m mocks) *echo.Echo {
	t.Helper()

	server := httpadapter.NewServer(m.handlers(), discardLogger())
	e, err := httpadapter.NewRouter(server, discardLogger())
	require.NoError(t, err)

	return e
}
