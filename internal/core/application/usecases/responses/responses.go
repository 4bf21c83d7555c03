// Package responses holds the read models returned by the capacity use cases and
// the helpers that assemble them from domain objects.
package responses

import (
	"capacity/internal/core/domain/model/capacity"
	"capacity/internal/core/domain/model/technology"
)

// TechnologyResponse is the projection of a technology attached to a capacity.
type TechnologyResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CapacityResponse is a capacity enriched with its technologies.
//
// Example:
//
//	response := CapacityResponse{
//	    ID:          1,
//	    Name:        "Backend Development",
//	    Description: "Server side skills",
//	    Technologies: []TechnologyResponse{
//	        {ID: 3, Name: "Go", Description: "Compiled language"},
//	    },
//	}
type CapacityResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Technologies []TechnologyResponse `json:"technologies"`
}

// AssociateCapacityWithBootcampResponse is a capacity, its technologies and the
// bootcamp it was just linked to.
type AssociateCapacityWithBootcampResponse struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Technologies []TechnologyResponse `json:"technologies"`
	BootcampID   int64                `json:"bootcampId"`
}

// FilterResponse echoes the paging request so that clients can render paging controls.
type FilterResponse struct {
	Page   int    `json:"page"`
	Size   int    `json:"size"`
	SortBy string `json:"sortBy"`
	Order  string `json:"order"`
}

// GetCapacitiesResponse is one page of capacities plus the filter that produced it.
type GetCapacitiesResponse struct {
	Capacities []CapacityResponse `json:"capacities"`
	Filter     FilterResponse     `json:"filter"`
}

// NewTechnologyResponses projects technologies, keeping their order.
// It never returns nil, so an empty list serializes as [].
func NewTechnologyResponses(technologies []*technology.Technology) []TechnologyResponse {
	out := make([]TechnologyResponse, 0, len(technologies))
	for _, t := range technologies {
		out = append(out, TechnologyResponse{
			ID:          t.ID().Value(),
			Name:        t.Name().Value(),
			Description: t.Description().Value(),
		})
	}
	return out
}

// NewCapacityResponse projects a capacity together with the given technologies.
func NewCapacityResponse(c *capacity.Capacity, technologies []*technology.Technology) CapacityResponse {
	return CapacityResponse{
		ID:           c.ID().Value(),
		Name:         c.Name().Value(),
		Description:  c.Description().Value(),
		Technologies: NewTechnologyResponses(technologies),
	}
}

// NewAssociateCapacityWithBootcampResponse projects a freshly created association.
func NewAssociateCapacityWithBootcampResponse(
	c *capacity.Capacity,
	technologies []*technology.Technology,
	assoc capacity.CapacityBootcamp,
) AssociateCapacityWithBootcampResponse {
	return AssociateCapacityWithBootcampResponse{
		ID:           c.ID().Value(),
		Name:         c.Name().Value(),
		Description:  c.Description().Value(),
		Technologies: NewTechnologyResponses(technologies),
		BootcampID:   assoc.BootcampID().Value(),
	}
}
