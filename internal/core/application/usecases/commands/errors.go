package commands

import "capacity/internal/pkg/errs"

const (
	// MinTechnologies is the smallest technology set a capacity may be created with.
	MinTechnologies = 3
	// MaxTechnologies is the largest technology set a capacity may be created with.
	// It also caps the number of association calls in flight.
	MaxTechnologies = 20
)

// Business rule violations raised by the command handlers. Each one is a sentinel:
// compare with errors.Is.
var (
	ErrBelowMinimumTechnologies = errs.NewBusinessRuleViolationError(
		"BELOW_MINIMUM_TECHNOLOGIES", "The capacity should have 3 technologies minimum.")
	ErrAboveMaximumTechnologies = errs.NewBusinessRuleViolationError(
		"ABOVE_MAXIMUM_TECHNOLOGIES", "The capacity should have 20 technologies maximum.")
	ErrDuplicateTechnologies = errs.NewBusinessRuleViolationError(
		"DUPLICATE_TECHNOLOGIES", "The capacity should not have duplicated technologies.")
	ErrDuplicateCapacityName = errs.NewBusinessRuleViolationError(
		"DUPLICATE_CAPACITY_NAME", "The capacity name cannot be duplicated.")
	ErrUnknownTechnology = errs.NewBusinessRuleViolationError(
		"UNKNOWN_TECHNOLOGY", "Some technologies have not been found.")
	ErrCapacityNotFound = errs.NewBusinessRuleViolationError(
		"CAPACITY_NOT_FOUND", "The capacity has not been found.")
	ErrAssociationAlreadyExists = errs.NewBusinessRuleViolationError(
		"ASSOCIATION_ALREADY_EXISTS", "The capacity is already associated with this bootcamp.")
	ErrMissingBootcampID = errs.NewBusinessRuleViolationError(
		"MISSING_BOOTCAMP_ID", "Bootcamp ID cannot be null.")
	ErrBootcampNotFound = errs.NewBusinessRuleViolationError(
		"BOOTCAMP_NOT_FOUND", "Bootcamp has not been found.")
)
