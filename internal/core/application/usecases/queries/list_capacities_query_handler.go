package queries

import (
	"context"
	"slices"
	"sort"

	"capacity/internal/core/application/usecases/responses"
	"capacity/internal/core/ports"
)

// ListCapacitiesQueryHandler returns one page of capacities with their technologies.
//
// Sorting by name is delegated to the store, which always returns the page in
// ascending order; a descending request reverses that page in memory, so both
// orders cover the same window of rows.
//
// Sorting by technology count cannot be pushed to the store: every capacity is
// loaded and enriched, sorted stably by count and then sliced.
type ListCapacitiesQueryHandler struct {
	capacityRepo      ports.CapacityRepository
	technologyService ports.TechnologyService
}

func NewListCapacitiesQueryHandler(
	capacityRepo ports.CapacityRepository,
	technologyService ports.TechnologyService,
) ListCapacitiesQueryHandler {
	return ListCapacitiesQueryHandler{
		capacityRepo:      capacityRepo,
		technologyService: technologyService,
	}
}

func (h ListCapacitiesQueryHandler) Handle(
	ctx context.Context,
	query ListCapacitiesQuery,
) (responses.GetCapacitiesResponse, error) {
	if err := query.Validate(); err != nil {
		return responses.GetCapacitiesResponse{}, err
	}

	var (
		items []responses.CapacityResponse
		err   error
	)
	if query.ByTechnologies() {
		items, err = h.byTechnologies(ctx, query)
	} else {
		items, err = h.byName(ctx, query)
	}
	if err != nil {
		return responses.GetCapacitiesResponse{}, err
	}

	return responses.GetCapacitiesResponse{
		Capacities: items,
		Filter: responses.FilterResponse{
			Page:   query.Page(),
			Size:   query.Size(),
			SortBy: query.SortBy(),
			Order:  query.Order(),
		},
	}, nil
}

func (h ListCapacitiesQueryHandler) byName(
	ctx context.Context,
	query ListCapacitiesQuery,
) ([]responses.CapacityResponse, error) {
	capacities, err := h.capacityRepo.FindAllPagedSorted(
		ctx, query.Page(), query.Size(), SortByName, query.Order(),
	)
	if err != nil {
		return nil, err
	}

	if query.Descending() {
		capacities = slices.Clone(capacities)
		slices.Reverse(capacities)
	}

	return enrichInOrder(ctx, h.technologyService, capacities)
}

func (h ListCapacitiesQueryHandler) byTechnologies(
	ctx context.Context,
	query ListCapacitiesQuery,
) ([]responses.CapacityResponse, error) {
	capacities, err := h.capacityRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	all, err := enrichInOrder(ctx, h.technologyService, capacities)
	if err != nil {
		return nil, err
	}

	desc := query.Descending()
	sort.SliceStable(all, func(i, j int) bool {
		if desc {
			return len(all[i].Technologies) > len(all[j].Technologies)
		}
		return len(all[i].Technologies) < len(all[j].Technologies)
	})

	return pageOf(all, query.Page(), query.Size()), nil
}

// pageOf returns items[page*size : min(len, page*size+size)], or an empty
// slice when the window starts past the end.
func pageOf[T any](items []T, page, size int) []T {
	if size <= 0 || page < 0 || len(items) == 0 || page > (len(items)-1)/size {
		return []T{}
	}

	from := page * size
	return items[from : from+min(size, len(items)-from)]
}
