// Package ports defines the collaborator contracts consumed by the capacity use cases.
// These interfaces establish contracts between the application layer and infrastructure,
// enabling dependency inversion and testability: production adapters and test doubles
// are interchangeable implementations.
package ports

import (
	"context"

	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/kernel"
)

// CapacityRepository defines the persistence contract of the capacity store.
// The store owns Capacity records and Capacity–Bootcamp association records.
// Each method is atomic on its own; callers get no cross-call transaction.
type CapacityRepository interface {
	// ExistsByName reports whether a capacity with exactly this name is stored.
	ExistsByName(ctx context.Context, name kernel.Name) (bool, error)

	// Save persists a new capacity (name and description only) and returns it
	// with its freshly assigned identity.
	Save(ctx context.Context, c *capacity.Capacity) (*capacity.Capacity, error)

	// FindByID retrieves a capacity by identity.
	// Returns an errs.ObjectNotFoundError when no such capacity exists.
	FindByID(ctx context.Context, id kernel.ID) (*capacity.Capacity, error)

	// FindByBootcamp retrieves every capacity linked to the bootcamp.
	// Returns an empty slice when there is none.
	FindByBootcamp(ctx context.Context, bootcampID kernel.ID) ([]*capacity.Capacity, error)

	// FindAllPagedSorted returns one page of capacities ordered by name ascending,
	// using limit = size and offset = page*size.
	//
	// The result is ascending whatever sortBy and order say; callers that want a
	// descending page reverse the returned slice themselves.
	FindAllPagedSorted(ctx context.Context, page, size int, sortBy, order string) ([]*capacity.Capacity, error)

	// FindAll retrieves every stored capacity in a stable order.
	FindAll(ctx context.Context) ([]*capacity.Capacity, error)

	// CountBootcampsByCapacityID returns the number of distinct bootcamps linked
	// to the capacity (its reference count).
	CountBootcampsByCapacityID(ctx context.Context, capacityID kernel.ID) (int64, error)

	// Delete removes the capacity record together with its bootcamp associations.
	Delete(ctx context.Context, capacityID kernel.ID) error

	// AssociateCapacityBootcamp persists a new capacity–bootcamp association.
	AssociateCapacityBootcamp(ctx context.Context, assoc capacity.CapacityBootcamp) (capacity.CapacityBootcamp, error)

	// FindByBootcampIDAndCapacityID retrieves the association for the pair.
	// Returns an errs.ObjectNotFoundError when the pair is not linked.
	FindByBootcampIDAndCapacityID(
		ctx context.Context,
		bootcampID, capacityID kernel.ID,
	) (capacity.CapacityBootcamp, error)

	// DeleteCapacityBootcampRelation removes only the (capacity, bootcamp) association row.
	DeleteCapacityBootcampRelation(ctx context.Context, capacityID, bootcampID kernel.ID) error
}
