package technology

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

var (
	// ErrTechnologyIsNotConstructed is returned when using an improperly initialized Technology.
	ErrTechnologyIsNotConstructed = errors.New("Technology must be created via NewTechnology constructor")
	// ErrCapacityTechnologyIsNotConstructed is returned when using an improperly initialized CapacityTechnology.
	ErrCapacityTechnologyIsNotConstructed = errors.New(
		"CapacityTechnology must be created via NewCapacityTechnology constructor",
	)
)

// Technology is a skill or tool owned by the technology service.
// Capacities reference technologies by identity only; this service never
// creates, renames or deletes a Technology record itself.
type Technology struct {
	id          kernel.ID
	name        kernel.Name
	description kernel.Description
	guard       guard.ConstructorGuard
}

// NewTechnology builds a Technology from raw values, typically a response of the
// technology service. All validation errors are reported together.
//
// Example:
//
//	tech, err := technology.NewTechnology(1, "Go", "Compiled language")
//	if err != nil {
//	    return nil, err
//	}
func NewTechnology(id int64, name, description string) (*Technology, error) {
	t := &Technology{
		guard: guard.NewConstructorGuard(),
	}

	techID, idErr := kernel.NewID(id)
	techName, nameErr := kernel.NewName(name)
	techDescription, descriptionErr := kernel.NewDescription(description)
	if err := errors.Join(idErr, nameErr, descriptionErr); err != nil {
		return nil, err
	}

	t.id = techID
	t.name = techName
	t.description = techDescription
	return t, nil
}

// ID returns the technology identity.
func (t *Technology) ID() kernel.ID {
	return t.id
}

// Name returns the technology name.
func (t *Technology) Name() kernel.Name {
	return t.name
}

// Description returns the technology description.
func (t *Technology) Description() kernel.Description {
	return t.description
}

// Validate ensures the technology was created through NewTechnology.
func (t *Technology) Validate() error {
	if t == nil {
		return ErrTechnologyIsNotConstructed
	}
	return t.guard.Validate(ErrTechnologyIsNotConstructed)
}

// CapacityTechnology asks the technology service to link the technology with
// the given name to a capacity. The service resolves the name to an identity.
type CapacityTechnology struct {
	capacityID     kernel.ID
	technologyName kernel.Name
	guard          guard.ConstructorGuard
}

// NewCapacityTechnology validates both halves of the association request.
func NewCapacityTechnology(capacityID kernel.ID, technologyName string) (CapacityTechnology, error) {
	name, nameErr := kernel.NewName(technologyName)
	if err := errors.Join(capacityID.Validate(), nameErr); err != nil {
		return CapacityTechnology{}, err
	}

	return CapacityTechnology{
		capacityID:     capacityID,
		technologyName: name,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// CapacityID returns the capacity that receives the technology.
func (c CapacityTechnology) CapacityID() kernel.ID {
	return c.capacityID
}

// TechnologyName returns the name the technology service must resolve.
func (c CapacityTechnology) TechnologyName() kernel.Name {
	return c.technologyName
}

// Validate ensures the request was created through NewCapacityTechnology.
func (c CapacityTechnology) Validate() error {
	return c.guard.Validate(ErrCapacityTechnologyIsNotConstructed)
}
