package capacity

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

// ErrCapacityBootcampIsNotConstructed is returned when using an improperly initialized CapacityBootcamp.
var ErrCapacityBootcampIsNotConstructed = errors.New(
	"CapacityBootcamp must be created via NewCapacityBootcamp constructor",
)

// CapacityBootcamp links a capacity to an external bootcamp. The pair is unique.
// Bootcamp identity is an opaque external key; no bootcamp entity exists here.
type CapacityBootcamp struct {
	bootcampID kernel.ID
	capacityID kernel.ID
	guard      guard.ConstructorGuard
}

// NewCapacityBootcamp builds the association for the given pair of identities.
func NewCapacityBootcamp(bootcampID, capacityID kernel.ID) (CapacityBootcamp, error) {
	if err := errors.Join(bootcampID.Validate(), capacityID.Validate()); err != nil {
		return CapacityBootcamp{}, err
	}

	return CapacityBootcamp{
		bootcampID: bootcampID,
		capacityID: capacityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// BootcampID returns the bootcamp side of the association.
func (a CapacityBootcamp) BootcampID() kernel.ID {
	return a.bootcampID
}

// CapacityID returns the capacity side of the association.
func (a CapacityBootcamp) CapacityID() kernel.ID {
	return a.capacityID
}

// Validate ensures the association was created through NewCapacityBootcamp.
func (a CapacityBootcamp) Validate() error {
	return a.guard.Validate(ErrCapacityBootcampIsNotConstructed)
}
