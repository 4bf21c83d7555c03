package commands

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

var ErrAssociateCapacityWithBootcampCommandIsNotConstructed = errors.New(
	"AssociateCapacityWithBootcampCommand must be created via NewAssociateCapacityWithBootcampCommand constructor",
)

// AssociateCapacityWithBootcampCommand links an existing capacity to a bootcamp.
type AssociateCapacityWithBootcampCommand struct { //nolint:recvcheck //using for validation
	capacityID kernel.ID
	bootcampID kernel.ID

	guard guard.ConstructorGuard
}

func NewAssociateCapacityWithBootcampCommand(capacityID, bootcampID int64) (AssociateCapacityWithBootcampCommand, error) {
	cID, cErr := kernel.NewID(capacityID)
	bID, bErr := kernel.NewID(bootcampID)
	if err := errors.Join(cErr, bErr); err != nil {
		return AssociateCapacityWithBootcampCommand{}, err
	}

	return AssociateCapacityWithBootcampCommand{
		capacityID: cID,
		bootcampID: bID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssociateCapacityWithBootcampCommand) Validate() error {
	return c.guard.Validate(ErrAssociateCapacityWithBootcampCommandIsNotConstructed)
}

func (c AssociateCapacityWithBootcampCommand) CapacityID() kernel.ID {
	return c.capacityID
}

func (c AssociateCapacityWithBootcampCommand) BootcampID() kernel.ID {
	return c.bootcampID
}
