// Package technology models the parts of the technology service this service
// reads and writes through the TechnologyService port.
//
// The package includes:
//   - Technology: identity, name and description of a skill, owned by the technology service
//   - CapacityTechnology: a (capacity, technology name) association request
package technology
