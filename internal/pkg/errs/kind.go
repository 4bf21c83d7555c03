package errs

import "errors"

// Kind tells callers whether an error is caused by their input or by the system.
type Kind int

const (
	// KindInfrastructure is any failure surfaced by a collaborator. Retrying later may help.
	KindInfrastructure Kind = iota
	// KindValidation is a value object that refused its input.
	KindValidation
	// KindBusiness is a broken business rule.
	KindBusiness
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindBusiness:
		return "business"
	default:
		return "infrastructure"
	}
}

// KindOf classifies err. Anything not recognised is KindInfrastructure.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInfrastructure
	case errors.Is(err, ErrBusinessRuleViolation):
		return KindBusiness
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindInfrastructure
	}
}

// IsUserError reports whether err should be fixed by the caller rather than retried.
func IsUserError(err error) bool {
	k := KindOf(err)
	return k == KindValidation || k == KindBusiness
}
