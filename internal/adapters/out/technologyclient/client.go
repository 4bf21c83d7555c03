// Package technologyclient talks to the remote technology service over HTTP/JSON.
//
// Every call waits on a shared rate limiter and then runs through a circuit
// breaker dedicated to its operation. Rejections (4xx) become business errors
// carrying the remote description and do not count against the breaker; server
// failures (5xx) and transport errors are infrastructure errors.
package technologyclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/domain/model/technology"
	"capacity/internal/pkg/errs"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	opFindAll          = "findAll"
	opFindByCapacityID = "findByCapacityId"
	opAssociate        = "associateTechnology"
	opDeleteByCapacity = "deleteTechnologiesByCapacity"
)

// RejectedCode is the code of business errors built from 4xx responses.
const RejectedCode = "TECHNOLOGY_SERVICE_REJECTED"

// Config holds the client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// RPS and Burst size the outbound token bucket. RPS <= 0 disables limiting.
	RPS   float64
	Burst int

	// BreakerMaxFailures consecutive failures open a breaker for BreakerOpenTimeout.
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// Client implements ports.TechnologyService.
type Client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	breakers map[string]*gobreaker.CircuitBreaker
	logger   *slog.Logger
}

// New creates a client for the technology service at cfg.BaseURL.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, errs.NewValueIsRequiredError("technology service base url")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}

	c := &Client{
		baseURL:  base,
		http:     &http.Client{Timeout: timeout},
		limiter:  limiter,
		breakers: make(map[string]*gobreaker.CircuitBreaker, 4),
		logger:   logger.With("component", "technology_client"),
	}
	for _, op := range []string{opFindAll, opFindByCapacityID, opAssociate, opDeleteByCapacity} {
		c.breakers[op] = c.newBreaker(op, cfg)
	}
	return c, nil
}

func (c *Client) newBreaker(op string, cfg Config) *gobreaker.CircuitBreaker {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    op,
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errs.KindOf(err) == errs.KindBusiness || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("circuit breaker state changed",
				"operation", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

type technologyDTO struct {
	TechnologyID int64  `json:"technologyId"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

type associateRequest struct {
	CapacityID int64  `json:"capacityId"`
	Technology string `json:"technology"`
}

type errorBody struct {
	Description string `json:"description"`
}

// FindAll returns the technology catalog.
func (c *Client) FindAll(ctx context.Context) ([]*technology.Technology, error) {
	var dtos []technologyDTO
	if err := c.call(ctx, opFindAll, http.MethodGet, "", nil, &dtos); err != nil {
		return nil, err
	}
	return toTechnologies(dtos)
}

// FindByCapacityID returns the technologies associated with the capacity.
func (c *Client) FindByCapacityID(ctx context.Context, capacityID kernel.ID) ([]*technology.Technology, error) {
	var dtos []technologyDTO
	if err := c.call(ctx, opFindByCapacityID, http.MethodGet, capacityPath(capacityID), nil, &dtos); err != nil {
		return nil, err
	}
	return toTechnologies(dtos)
}

// AssociateTechnology links the named technology to the capacity.
func (c *Client) AssociateTechnology(
	ctx context.Context,
	assoc technology.CapacityTechnology,
) (*technology.Technology, error) {
	if err := assoc.Validate(); err != nil {
		return nil, err
	}

	req := associateRequest{
		CapacityID: assoc.CapacityID().Value(),
		Technology: assoc.TechnologyName().Value(),
	}

	var dto technologyDTO
	if err := c.call(ctx, opAssociate, http.MethodPost, "/associate", req, &dto); err != nil {
		return nil, err
	}
	return technology.NewTechnology(dto.TechnologyID, dto.Name, dto.Description)
}

// DeleteTechnologiesByCapacity detaches every technology of the capacity and
// returns the ids the service reports as detached.
func (c *Client) DeleteTechnologiesByCapacity(ctx context.Context, capacityID kernel.ID) ([]kernel.ID, error) {
	var raw []int64
	if err := c.call(ctx, opDeleteByCapacity, http.MethodDelete, capacityPath(capacityID), nil, &raw); err != nil {
		return nil, err
	}

	ids := make([]kernel.ID, 0, len(raw))
	for _, v := range raw {
		id, err := kernel.NewID(v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("technology service %s: %w", op, err)
	}

	_, err := c.breakers[op].Execute(func() (any, error) {
		return nil, c.roundTrip(ctx, method, path, body, out)
	})
	if err != nil && errs.KindOf(err) != errs.KindBusiness {
		return fmt.Errorf("technology service %s: %w", op, err)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("external service error: %s", strings.TrimSpace(string(msg)))
	case resp.StatusCode >= http.StatusBadRequest:
		return rejection(resp.Body)
	}

	if out == nil {
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func rejection(body io.Reader) error {
	var eb errorBody
	if err := json.NewDecoder(io.LimitReader(body, 4<<10)).Decode(&eb); err != nil || eb.Description == "" {
		return errs.NewBusinessRuleViolationError(RejectedCode, "Client error")
	}
	return errs.NewBusinessRuleViolationError(RejectedCode, eb.Description)
}

func capacityPath(id kernel.ID) string {
	return "/capacity/" + strconv.FormatInt(id.Value(), 10)
}

func toTechnologies(dtos []technologyDTO) ([]*technology.Technology, error) {
	out := make([]*technology.Technology, 0, len(dtos))
	for _, dto := range dtos {
		t, err := technology.NewTechnology(dto.TechnologyID, dto.Name, dto.Description)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
