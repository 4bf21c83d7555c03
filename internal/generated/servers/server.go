// Package servers holds the HTTP contract of the capacity service: request
// models, the ServerInterface implemented by the echo adapter, parameter
// binding and the embedded OpenAPI document.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /v1/api/capacity)
	ListCapacities(ctx echo.Context, params ListCapacitiesParams) error
	// (POST /v1/api/capacity)
	CreateCapacity(ctx echo.Context) error
	// (POST /v1/api/capacity/associate)
	AssociateCapacityWithBootcamp(ctx echo.Context) error
	// (DELETE /v1/api/capacity/bootcamp/{bootcampId})
	DeleteCapacitiesByBootcamp(ctx echo.Context, bootcampId int64) error
	// (GET /v1/api/capacity/bootcamp/{bootcampId})
	GetCapacitiesByBootcamp(ctx echo.Context, bootcampId int64) error
	// (GET /v1/api/capacity/ids)
	ListCapacityIds(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCapacities converts echo context to params.
func (w *ServerInterfaceWrapper) ListCapacities(ctx echo.Context) error {
	var err error

	var params ListCapacitiesParams

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter size: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "sortBy", ctx.QueryParams(), &params.SortBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortBy: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "order", ctx.QueryParams(), &params.Order)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter order: %s", err))
	}

	return w.Handler.ListCapacities(ctx, params)
}

// CreateCapacity converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCapacity(ctx echo.Context) error {
	return w.Handler.CreateCapacity(ctx)
}

// AssociateCapacityWithBootcamp converts echo context to params.
func (w *ServerInterfaceWrapper) AssociateCapacityWithBootcamp(ctx echo.Context) error {
	return w.Handler.AssociateCapacityWithBootcamp(ctx)
}

// DeleteCapacitiesByBootcamp converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCapacitiesByBootcamp(ctx echo.Context) error {
	bootcampId, err := bindBootcampID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.DeleteCapacitiesByBootcamp(ctx, bootcampId)
}

// GetCapacitiesByBootcamp converts echo context to params.
func (w *ServerInterfaceWrapper) GetCapacitiesByBootcamp(ctx echo.Context) error {
	bootcampId, err := bindBootcampID(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetCapacitiesByBootcamp(ctx, bootcampId)
}

// ListCapacityIds converts echo context to params.
func (w *ServerInterfaceWrapper) ListCapacityIds(ctx echo.Context) error {
	return w.Handler.ListCapacityIds(ctx)
}

func bindBootcampID(ctx echo.Context) (int64, error) {
	var bootcampId int64

	err := runtime.BindStyledParameterWithLocation(
		"simple", false, "bootcampId", runtime.ParamLocationPath, ctx.Param("bootcampId"), &bootcampId,
	)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter bootcampId: %s", err))
	}

	return bootcampId, nil
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// needed to register the handlers.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/v1/api/capacity", wrapper.ListCapacities)
	router.POST(baseURL+"/v1/api/capacity", wrapper.CreateCapacity)
	router.POST(baseURL+"/v1/api/capacity/associate", wrapper.AssociateCapacityWithBootcamp)
	router.DELETE(baseURL+"/v1/api/capacity/bootcamp/:bootcampId", wrapper.DeleteCapacitiesByBootcamp)
	router.GET(baseURL+"/v1/api/capacity/bootcamp/:bootcampId", wrapper.GetCapacitiesByBootcamp)
	router.GET(baseURL+"/v1/api/capacity/ids", wrapper.ListCapacityIds)
}
