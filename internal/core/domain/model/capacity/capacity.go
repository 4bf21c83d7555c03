package capacity

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/domain/model/technology"
	"capacity/internal/pkg/guard"
)

// ErrCapacityIsNotConstructed is returned when using an improperly initialized Capacity.
var ErrCapacityIsNotConstructed = errors.New("Capacity must be created via NewCapacity or RestoreCapacity constructor")

// Capacity is a named grouping of technologies, e.g. "Backend Development".
// It is the aggregate root owned by the capacity store.
//
// Business rules:
//   - Name and description are stored trimmed and never blank
//   - A new capacity has no identity; the store assigns one when it is persisted
//   - Technologies are only carried at creation time; afterwards they are always
//     re-read from the technology service
//
// Example usage:
//
//	c, err := capacity.NewCapacity("Backend Development", "Server side skills")
//	if err != nil {
//	    return err
//	}
//	saved, err := repo.Save(ctx, c) // saved.ID() is now set
type Capacity struct {
	id           kernel.ID
	name         kernel.Name
	description  kernel.Description
	technologies []*technology.Technology
	guard        guard.ConstructorGuard
}

// NewCapacity creates a capacity that has not been persisted yet.
func NewCapacity(name, description string) (*Capacity, error) {
	c := &Capacity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCapacity reconstructs a persisted capacity from storage.
func RestoreCapacity(id int64, name, description string) (*Capacity, error) {
	c := &Capacity{
		guard: guard.NewConstructorGuard(),
	}

	capacityID, idErr := kernel.NewID(id)
	if err := errors.Join(
		idErr,
		c.setName(name),
		c.setDescription(description),
	); err != nil {
		return nil, err
	}

	c.id = capacityID
	return c, nil
}

// ID returns the capacity identity. It is the zero ID until the capacity is persisted.
func (c *Capacity) ID() kernel.ID {
	return c.id
}

// HasID reports whether the capacity has been persisted.
func (c *Capacity) HasID() bool {
	return !c.id.IsZero()
}

// Name returns the capacity name.
func (c *Capacity) Name() kernel.Name {
	return c.name
}

// Description returns the capacity description.
func (c *Capacity) Description() kernel.Description {
	return c.description
}

// Technologies returns a copy of the technologies attached at creation time.
func (c *Capacity) Technologies() []*technology.Technology {
	out := make([]*technology.Technology, len(c.technologies))
	copy(out, c.technologies)
	return out
}

// AttachTechnologies records the technologies that were associated with the capacity.
func (c *Capacity) AttachTechnologies(technologies []*technology.Technology) error {
	for _, t := range technologies {
		if err := t.Validate(); err != nil {
			return err
		}
	}

	c.technologies = append(c.technologies, technologies...)
	return nil
}

// Validate ensures the capacity was created through one of its constructors.
func (c *Capacity) Validate() error {
	if c == nil {
		return ErrCapacityIsNotConstructed
	}
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

func (c *Capacity) setName(name string) error {
	n, err := kernel.NewName(name)
	if err != nil {
		return err
	}

	c.name = n
	return nil
}

func (c *Capacity) setDescription(description string) error {
	d, err := kernel.NewDescription(description)
	if err != nil {
		return err
	}

	c.description = d
	return nil
}
