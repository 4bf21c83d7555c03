package queries

import (
	"errors"

	"capacity/internal/pkg/guard"
)

var ErrListCapacityIDsQueryIsNotConstructed = errors.New(
	"ListCapacityIDsQuery must be created via NewListCapacityIDsQuery constructor",
)

// ListCapacityIDsQuery lists the identity of every stored capacity.
type ListCapacityIDsQuery struct {
	guard guard.ConstructorGuard
}

func NewListCapacityIDsQuery() ListCapacityIDsQuery {
	return ListCapacityIDsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCapacityIDsQuery) Validate() error {
	return q.guard.Validate(ErrListCapacityIDsQueryIsNotConstructed)
}
