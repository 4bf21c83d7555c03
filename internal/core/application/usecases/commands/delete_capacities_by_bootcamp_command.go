package commands

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

var ErrDeleteCapacitiesByBootcampCommandIsNotConstructed = errors.New(
	"DeleteCapacitiesByBootcampCommand must be created via NewDeleteCapacitiesByBootcampCommand constructor",
)

// DeleteCapacitiesByBootcampCommand releases every capacity held by a bootcamp.
type DeleteCapacitiesByBootcampCommand struct { //nolint:recvcheck //using for validation
	bootcampID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteCapacitiesByBootcampCommand builds the command from an optional bootcamp id.
// A nil id is a business error (ErrMissingBootcampID); a non-positive one is a
// validation error.
func NewDeleteCapacitiesByBootcampCommand(bootcampID *int64) (DeleteCapacitiesByBootcampCommand, error) {
	if bootcampID == nil {
		return DeleteCapacitiesByBootcampCommand{}, ErrMissingBootcampID
	}

	id, err := kernel.NewID(*bootcampID)
	if err != nil {
		return DeleteCapacitiesByBootcampCommand{}, err
	}

	return DeleteCapacitiesByBootcampCommand{
		bootcampID: id,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCapacitiesByBootcampCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCapacitiesByBootcampCommandIsNotConstructed)
}

func (c DeleteCapacitiesByBootcampCommand) BootcampID() kernel.ID {
	return c.bootcampID
}
