package queries

import (
	"context"

	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/ports"
	"capacity/internal/pkg/fanout"
)

// GetCapacitiesByBootcampQueryHandler lists a bootcamp's capacities with their
// technologies. Technology lookups run concurrently, at most fanout.DefaultLimit
// at a time; the result keeps the store's order.
//
// A bootcamp without capacities yields an empty list, not an error.
type GetCapacitiesByBootcampQueryHandler struct {
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService
}

func NewGetCapacitiesByBootcampQueryHandler(
	capacityRepo ports.CapacityRepository,
	technologyService ports.TechnologyService,
) GetCapacitiesByBootcampQueryHandler {
	return GetCapacitiesByBootcampQueryHandler{
		capacityRepo:      capacityRepo,
		technologyService: technologyService,
	}
}

func (h GetCapacitiesByBootcampQueryHandler) Handle(
	ctx context.Context,
	query GetCapacitiesByBootcampQuery,
) ([]responses.CapacityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	capacities, err := h.capacityRepo.FindByBootcamp(ctx, query.BootcampID())
	if err != nil {
		return nil, err
	}

	return fanout.Map(ctx, capacities, fanout.DefaultLimit,
		func(ctx context.Context, c *capacity.Capacity) (responses.CapacityResponse, error) {
			return enrich(ctx, h.technologyService, c)
		})
}
