package queries

import (
	"context"

	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/ports"
)

// enrich fetches the current technologies of c and builds its response.
func enrich(
	ctx context.Context,
	technologyService ports.TechnologyService,
	c *capacity.Capacity,
) (responses.CapacityResponse, error) {
	techs, err := technologyService.FindByCapacityID(ctx, c.ID())
	if err != nil {
		return responses.CapacityResponse{}, err
	}
	return responses.NewCapacityResponse(c, techs), nil
}

// enrichInOrder enriches capacities one after another, keeping their order.
func enrichInOrder(
	ctx context.Context,
	technologyService ports.TechnologyService,
	capacities []*capacity.Capacity,
) ([]responses.CapacityResponse, error) {
	out := make([]responses.CapacityResponse, 0, len(capacities))
	for _, c := range capacities {
		r, err := enrich(ctx, technologyService, c)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
