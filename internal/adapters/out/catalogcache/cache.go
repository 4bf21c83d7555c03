// Package catalogcache keeps the technology catalog in Redis.
//
// CachedTechnologyService decorates a ports.TechnologyService. FindAll always
// asks the wrapped service first and stores what it returns; the stored copy is
// only served when the service fails with an infrastructure error (timeout,
// open breaker, 5xx). Redis failures are logged and never fail a request.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"capacity/internal/core/domain/model/technology"
	"capacity/internal/core/ports"
	"capacity/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	defaultKey = "capacity:technology-catalog"
	defaultTTL = time.Minute
)

type Option func(*CachedTechnologyService)

// WithKey sets the Redis key holding the catalog.
func WithKey(key string) Option {
	return func(s *CachedTechnologyService) {
		if k := strings.Trim(key, ":"); k != "" {
			s.key = k
		}
	}
}

// WithTTL sets how long a stored catalog may be served after the last successful read.
func WithTTL(ttl time.Duration) Option {
	return func(s *CachedTechnologyService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// CachedTechnologyService implements ports.TechnologyService.
type CachedTechnologyService struct {
	ports.TechnologyService

	rdb    *redis.Client
	key    string
	ttl    time.Duration
	logger *slog.Logger
}

func New(next ports.TechnologyService, rdb *redis.Client, logger *slog.Logger, opts ...Option) *CachedTechnologyService {
	s := &CachedTechnologyService{
		TechnologyService: next,
		rdb:               rdb,
		key:               defaultKey,
		ttl:               defaultTTL,
		logger:            logger.With("component", "catalog_cache"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FindAll returns the catalog from the wrapped service. When that fails with an
// infrastructure error the last stored catalog is returned instead, if any.
func (s *CachedTechnologyService) FindAll(ctx context.Context) ([]*technology.Technology, error) {
	techs, err := s.Refresh(ctx)
	if err == nil || errs.IsUserError(err) {
		return techs, err
	}

	cached, cacheErr := s.load(ctx)
	switch {
	case cacheErr == nil:
		s.logger.WarnContext(ctx, "serving stored catalog", "error", err, "technologies", len(cached))
		return cached, nil
	case !errors.Is(cacheErr, redis.Nil):
		s.logger.WarnContext(ctx, "catalog cache read failed", "error", cacheErr)
	}
	return nil, err
}

// Refresh reads the catalog from the wrapped service and stores it.
func (s *CachedTechnologyService) Refresh(ctx context.Context) ([]*technology.Technology, error) {
	techs, err := s.TechnologyService.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err = s.store(ctx, techs); err != nil {
		s.logger.WarnContext(ctx, "catalog cache write failed", "error", err)
	}
	return techs, nil
}

func (s *CachedTechnologyService) load(ctx context.Context) ([]*technology.Technology, error) {
	raw, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		return nil, err
	}

	var entries []entry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	techs := make([]*technology.Technology, 0, len(entries))
	for _, e := range entries {
		t, tErr := technology.NewTechnology(e.ID, e.Name, e.Description)
		if tErr != nil {
			return nil, tErr
		}
		techs = append(techs, t)
	}
	return techs, nil
}

func (s *CachedTechnologyService) store(ctx context.Context, techs []*technology.Technology) error {
	entries := make([]entry, 0, len(techs))
	for _, t := range techs {
		entries = append(entries, entry{
			ID:          t.ID().Value(),
			Name:        t.Name().Value(),
			Description: t.Description().Value(),
		})
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, raw, s.ttl).Err()
}
