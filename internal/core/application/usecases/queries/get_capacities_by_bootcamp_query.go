package queries

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

var ErrGetCapacitiesByBootcampQueryIsNotConstructed = errors.New(
	"GetCapacitiesByBootcampQuery must be created via NewGetCapacitiesByBootcampQuery constructor",
)

// GetCapacitiesByBootcampQuery lists the capacities linked to one bootcamp.
type GetCapacitiesByBootcampQuery struct {
	bootcampID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCapacitiesByBootcampQuery(bootcampID int64) (GetCapacitiesByBootcampQuery, error) {
	id, err := kernel.NewID(bootcampID)
	if err != nil {
		return GetCapacitiesByBootcampQuery{}, err
	}

	return GetCapacitiesByBootcampQuery{
		bootcampID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCapacitiesByBootcampQuery) Validate() error {
	return q.guard.Validate(ErrGetCapacitiesByBootcampQueryIsNotConstructed)
}

func (q GetCapacitiesByBootcampQuery) BootcampID() kernel.ID {
	return q.bootcampID
}
