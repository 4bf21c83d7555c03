// Package capacity provides the Capacity aggregate and its bootcamp association.
//
// The package includes:
//   - Capacity: the aggregate root (identity, name, description, technologies at creation)
//   - CapacityBootcamp: the unique (bootcamp, capacity) link record
//
// A capacity is destroyed only when its last bootcamp association is removed; the
// use cases in the application layer decide between cascade delete and detach.
package capacity
