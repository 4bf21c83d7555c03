package http

import (
	"context"
	"log/slog"
	"net/http"

	"capacity/internal/core/application/usecases/commands"
	"capacity/internal/core/application/usecases/queries"
	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Default paging values applied when the query string omits them.
const (
	DefaultPage   = 0
	DefaultSize   = 10
	DefaultSortBy = queries.SortByName
	DefaultOrder  = queries.OrderAsc
)

type CreateCapacityHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCapacityCommand) (responses.CapacityResponse, error)
}

type AssociateCapacityWithBootcampHandler interface {
	Handle(
		ctx context.Context,
		cmd commands.AssociateCapacityWithBootcampCommand,
	) (responses.AssociateCapacityWithBootcampResponse, error)
}

type DeleteCapacitiesByBootcampHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteCapacitiesByBootcampCommand) ([]kernel.ID, error)
}

type ListCapacitiesHandler interface {
	Handle(ctx context.Context, query queries.ListCapacitiesQuery) (responses.GetCapacitiesResponse, error)
}

type GetCapacitiesByBootcampHandler interface {
	Handle(ctx context.Context, query queries.GetCapacitiesByBootcampQuery) ([]responses.CapacityResponse, error)
}

type ListCapacityIDsHandler interface {
	Handle(ctx context.Context, query queries.ListCapacityIDsQuery) ([]int64, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCapacity                CreateCapacityHandler
	AssociateCapacityWithBootcamp AssociateCapacityWithBootcampHandler
	DeleteCapacitiesByBootcamp    DeleteCapacitiesByBootcampHandler
	ListCapacities                ListCapacitiesHandler
	GetCapacitiesByBootcamp       GetCapacitiesByBootcampHandler
	ListCapacityIDs               ListCapacityIDsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It translates requests into commands and queries and maps their errors
// onto the error kinds of the API.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// CreateCapacity handles POST /v1/api/capacity.
func (s *Server) CreateCapacity(ctx echo.Context) error {
	var request servers.CreateCapacityJSONRequestBody
	if err := s.bind(ctx, &request); err != nil {
		return s.reject(ctx, err)
	}

	cmd, err := commands.NewCreateCapacityCommand(request.Name, request.Description, request.TechnologyNames)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.CreateCapacity.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListCapacities handles GET /v1/api/capacity.
func (s *Server) ListCapacities(ctx echo.Context, params servers.ListCapacitiesParams) error {
	query, err := queries.NewListCapacitiesQuery(
		valueOr(params.Page, DefaultPage),
		valueOr(params.Size, DefaultSize),
		valueOr(params.SortBy, DefaultSortBy),
		valueOr(params.Order, DefaultOrder),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.ListCapacities.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListCapacityIds handles GET /v1/api/capacity/ids.
func (s *Server) ListCapacityIds(ctx echo.Context) error {
	ids, err := s.handlers.ListCapacityIDs.Handle(ctx.Request().Context(), queries.NewListCapacityIDsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ids)
}

// AssociateCapacityWithBootcamp handles POST /v1/api/capacity/associate.
func (s *Server) AssociateCapacityWithBootcamp(ctx echo.Context) error {
	var request servers.AssociateCapacityWithBootcampJSONRequestBody
	if err := s.bind(ctx, &request); err != nil {
		return s.reject(ctx, err)
	}

	cmd, err := commands.NewAssociateCapacityWithBootcampCommand(request.CapacityId, request.BootcampId)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.AssociateCapacityWithBootcamp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCapacitiesByBootcamp handles GET /v1/api/capacity/bootcamp/{bootcampId}.
func (s *Server) GetCapacitiesByBootcamp(ctx echo.Context, bootcampId int64) error {
	query, err := queries.NewGetCapacitiesByBootcampQuery(bootcampId)
	if err != nil {
		return s.fail(ctx, err)
	}

	response, err := s.handlers.GetCapacitiesByBootcamp.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteCapacitiesByBootcamp handles DELETE /v1/api/capacity/bootcamp/{bootcampId}.
func (s *Server) DeleteCapacitiesByBootcamp(ctx echo.Context, bootcampId int64) error {
	cmd, err := commands.NewDeleteCapacitiesByBootcampCommand(&bootcampId)
	if err != nil {
		return s.fail(ctx, err)
	}

	released, err := s.handlers.DeleteCapacitiesByBootcamp.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	ids := make([]int64, len(released))
	for i, id := range released {
		ids[i] = id.Value()
	}

	return ctx.JSON(http.StatusOK, ids)
}

// bind decodes the request body and runs the struct validation rules.
func (s *Server) bind(ctx echo.Context, request any) error {
	if err := ctx.Bind(request); err != nil {
		s.logger.Debug("request body rejected", "error", err)
		return errInvalidRequestBody
	}

	return ctx.Validate(request)
}

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
