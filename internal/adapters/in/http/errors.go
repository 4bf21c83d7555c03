package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"capacity/internal/core/application/usecases/commands"
	"capacity/internal/generated/servers"
	"capacity/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GenericErrorMessage is the only detail an unexpected failure exposes.
const GenericErrorMessage = "An unexpected error occurred"

var errInvalidRequestBody = errors.New("Invalid request body")

// reject answers a request whose shape is wrong before any use case runs.
func (s *Server) reject(ctx echo.Context, err error) error {
	s.logger.Warn("validation error", "error", err)

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Error:   servers.ErrorKindValidation,
		Message: err.Error(),
	})
}

// fail maps a use case error onto its HTTP representation.
func (s *Server) fail(ctx echo.Context, err error) error {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		s.logger.Warn("domain error", "error", err)

		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Error:   servers.ErrorKindDomain,
			Message: flatten(err),
		})
	case errs.KindBusiness:
		s.logger.Warn("business error", "error", err)

		status := http.StatusBadRequest
		if errors.Is(err, commands.ErrCapacityNotFound) || errors.Is(err, commands.ErrBootcampNotFound) {
			status = http.StatusNotFound
		}

		return ctx.JSON(status, servers.Error{
			Error:   servers.ErrorKindBusiness,
			Message: businessMessage(err),
		})
	default:
		s.logger.Error("unexpected error",
			"error", err,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
		)

		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Error:   servers.ErrorKindInternal,
			Message: GenericErrorMessage,
		})
	}
}

// ErrorHandler renders errors that escape the handlers, e.g. parameter binding
// and OpenAPI validation failures or unknown routes, in the API error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := servers.Error{
			Error:   servers.ErrorKindInternal,
			Message: GenericErrorMessage,
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
			status = httpErr.Code
			body = servers.Error{
				Error:   servers.ErrorKindValidation,
				Message: fmt.Sprint(httpErr.Message),
			}
			logger.Warn("request rejected", "status", status, "error", err)
		} else {
			logger.Error("unhandled error", "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(status)
		} else {
			err = ctx.JSON(status, body)
		}
		if err != nil {
			logger.Error("failed to write error response", "error", err)
		}
	}
}

func businessMessage(err error) string {
	var violation *errs.BusinessRuleViolationError
	if errors.As(err, &violation) {
		return violation.Message
	}
	return err.Error()
}

// flatten joins the lines produced by errors.Join into a single message.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ", ")
}
