package ports

import (
	"context"

	"capacity/internal/core/domain/model/kernel"
	"capacity/internal/core/domain/model/technology"
)

// TechnologyService defines the contract of the remote technology service.
// It owns technology identity and the capacity–technology associations.
// Timeouts, retries and circuit breaking are the adapter's business; use cases
// propagate whatever error an implementation returns.
type TechnologyService interface {
	// FindAll returns the full technology catalog.
	FindAll(ctx context.Context) ([]*technology.Technology, error)

	// FindByCapacityID returns the technologies currently associated with the capacity,
	// in the order the service reports them.
	FindByCapacityID(ctx context.Context, capacityID kernel.ID) ([]*technology.Technology, error)

	// AssociateTechnology links the named technology to the capacity and returns
	// the resolved technology.
	AssociateTechnology(ctx context.Context, assoc technology.CapacityTechnology) (*technology.Technology, error)

	// DeleteTechnologiesByCapacity removes every technology association of the
	// capacity and returns the identities of the technologies that were detached.
	DeleteTechnologiesByCapacity(ctx context.Context, capacityID kernel.ID) ([]kernel.ID, error)
}
