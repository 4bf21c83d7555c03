// Package kernel provides the value objects shared by the capacity domain.
//
// The package includes:
//   - ID: an opaque positive integer identity (capacities, technologies, bootcamps)
//   - Name: a trimmed, non-blank name of at most 50 characters
//   - Description: a trimmed, non-blank description of at most 90 characters
//
// Value objects are immutable and validate on construction: a constructor either
// returns a valid value or an error from the errs package, never a half-built value.
// Zero values are invalid and fail Validate.
package kernel
