// Package commands contains the capacity use cases that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler follows the same shape: validate the command, check business rules
// against the collaborators, and only then perform side effects.
package commands

import (
	"errors"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/pkg/guard"
)

var ErrCreateCapacityCommandIsNotConstructed = errors.New(
	"CreateCapacityCommand must be created via NewCreateCapacityCommand constructor",
)

// CreateCapacityCommand represents a request to create a capacity together with
// its initial technology set.
//
// Technology names are kept exactly as given: duplicate detection and catalog
// lookups are case-sensitive and do not trim.
//
// Example:
//
//	cmd, err := NewCreateCapacityCommand(
//	    "Backend Development",
//	    "Server side skills",
//	    []string{"Go", "PostgreSQL", "Docker"},
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid capacity data: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, cmd)
type CreateCapacityCommand struct { //nolint:recvcheck //using for validation
	name            kernel.Name
	description     kernel.Description
	technologyNames []string

	guard guard.ConstructorGuard
}

// NewCreateCapacityCommand creates a command to register a new capacity.
//
// The technology set is checked first and the first broken rule is returned:
// at least MinTechnologies names, at most MaxTechnologies names, no duplicates.
// Only then are name and description trimmed and validated.
func NewCreateCapacityCommand(name, description string, technologyNames []string) (CreateCapacityCommand, error) {
	if err := checkTechnologySet(technologyNames); err != nil {
		return CreateCapacityCommand{}, err
	}

	command := CreateCapacityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setDescription(description),
	); err != nil {
		return CreateCapacityCommand{}, err
	}

	command.technologyNames = append([]string(nil), technologyNames...)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCapacityCommand) Validate() error {
	return c.guard.Validate(ErrCreateCapacityCommandIsNotConstructed)
}

// Name returns the capacity name.
func (c CreateCapacityCommand) Name() kernel.Name {
	return c.name
}

// Description returns the capacity description.
func (c CreateCapacityCommand) Description() kernel.Description {
	return c.description
}

// TechnologyNames returns a copy of the requested technology names in request order.
func (c CreateCapacityCommand) TechnologyNames() []string {
	return append([]string(nil), c.technologyNames...)
}

func (c *CreateCapacityCommand) setName(name string) error {
	n, err := kernel.NewName(name)
	if err != nil {
		return err
	}

	c.name = n
	return nil
}

func (c *CreateCapacityCommand) setDescription(description string) error {
	d, err := kernel.NewDescription(description)
	if err != nil {
		return err
	}

	c.description = d
	return nil
}

// checkTechnologySet applies the count and uniqueness rules. Names are compared
// as given, so "Go" and "go" are distinct.
func checkTechnologySet(names []string) error {
	switch {
	case len(names) < MinTechnologies:
		return ErrBelowMinimumTechnologies
	case len(names) > MaxTechnologies:
		return ErrAboveMaximumTechnologies
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return ErrDuplicateTechnologies
		}
		seen[name] = struct{}{}
	}
	return nil
}
