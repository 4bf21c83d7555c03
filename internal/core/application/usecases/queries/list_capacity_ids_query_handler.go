package queries

import (
	"context"

	"capacity/internal/core/ports"
)

// ListCapacityIDsQueryHandler returns capacity ids in the store's listing order.
type ListCapacityIDsQueryHandler struct {
	capacityRepo ports.CapacityRepository
}

func NewListCapacityIDsQueryHandler(capacityRepo ports.CapacityRepository) ListCapacityIDsQueryHandler {
	return ListCapacityIDsQueryHandler{capacityRepo: capacityRepo}
}

func (h ListCapacityIDsQueryHandler) Handle(ctx context.Context, query ListCapacityIDsQuery) ([]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	capacities, err := h.capacityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(capacities))
	for _, c := range capacities {
		ids = append(ids, c.ID().Value())
	}
	return ids, nil
}
