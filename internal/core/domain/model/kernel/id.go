package kernel

import (
	"math"
	"strconv"

	"capacity/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through NewID.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object for the opaque positive integer identities used by
// capacities, technologies and bootcamps.
//
// The zero value of ID is invalid and stands for "no identity yet"; a Capacity
// carries a zero ID until the store persists it.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.Value()) // 42
type ID struct {
	value int64
}

// NewID wraps value in an ID. Values below 1 are rejected.
func NewID(value int64) (ID, error) {
	if value < 1 {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, 1, int64(math.MaxInt64))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for values known to be valid, such as literals in tests
// and rows read back from the store. It panics on invalid input.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Value returns the wrapped integer.
func (i ID) Value() int64 {
	return i.value
}

// IsZero reports whether the ID is the zero value.
func (i ID) IsZero() bool {
	return i.value == 0
}

// IsEqual compares two IDs for equality.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (i ID) Validate() error {
	if i.IsZero() {
		return ErrIDIsNotConstructed
	}
	return nil
}
