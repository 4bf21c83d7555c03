// Package queries contains the capacity read operations.
// Queries return response read models built from the capacity store and
// enriched with technologies fetched from the technology service.
package queries

import (
	"errors"
	"math"
	"strings"

	"capacity/internal/pkg/errs"
	"capacity/internal/pkg/guard"
)

// Sort keys and orders accepted by ListCapacitiesQuery. Matching is case-insensitive.
const (
	SortByName         = "name"
	SortByTechnologies = "technologies"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// MaxPageSize is the largest page a caller may request.
const MaxPageSize = 1000

var ErrListCapacitiesQueryIsNotConstructed = errors.New(
	"ListCapacitiesQuery must be created via NewListCapacitiesQuery constructor",
)

// ListCapacitiesQuery requests one page of capacities.
//
// Example:
//
//	query, err := NewListCapacitiesQuery(0, 10, "technologies", "desc")
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListCapacitiesQuery struct {
	page   int
	size   int
	sortBy string
	order  string

	guard guard.ConstructorGuard
}

// NewListCapacitiesQuery validates the paging and sorting parameters.
// An empty sortBy or order falls back to "name" and "asc".
func NewListCapacitiesQuery(page, size int, sortBy, order string) (ListCapacitiesQuery, error) {
	if sortBy == "" {
		sortBy = SortByName
	}
	if order == "" {
		order = OrderAsc
	}

	var errList []error
	if page < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 0, "unbounded"))
	}
	if size < 0 || size > MaxPageSize {
		errList = append(errList, errs.NewValueIsOutOfRangeError("size", size, 0, MaxPageSize))
	}
	if size > 0 && page > math.MaxInt/size {
		errList = append(errList, errs.NewValueIsOutOfRangeError("page", page, 0, math.MaxInt/size))
	}
	if !strings.EqualFold(sortBy, SortByName) && !strings.EqualFold(sortBy, SortByTechnologies) {
		errList = append(errList, errs.NewValueIsInvalidError("sortBy"))
	}
	if !strings.EqualFold(order, OrderAsc) && !strings.EqualFold(order, OrderDesc) {
		errList = append(errList, errs.NewValueIsInvalidError("order"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListCapacitiesQuery{}, err
	}

	return ListCapacitiesQuery{
		page:   page,
		size:   size,
		sortBy: sortBy,
		order:  order,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListCapacitiesQuery) Validate() error {
	return q.guard.Validate(ErrListCapacitiesQueryIsNotConstructed)
}

func (q ListCapacitiesQuery) Page() int {
	return q.page
}

func (q ListCapacitiesQuery) Size() int {
	return q.size
}

// SortBy returns the sort key as the caller spelled it.
func (q ListCapacitiesQuery) SortBy() string {
	return q.sortBy
}

// Order returns the order as the caller spelled it.
func (q ListCapacitiesQuery) Order() string {
	return q.order
}

// ByTechnologies reports whether the page is sorted by technology count.
func (q ListCapacitiesQuery) ByTechnologies() bool {
	return strings.EqualFold(q.sortBy, SortByTechnologies)
}

// Descending reports whether the page is in descending order.
func (q ListCapacitiesQuery) Descending() bool {
	return strings.EqualFold(q.order, OrderDesc)
}
