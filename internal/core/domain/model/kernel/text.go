package kernel

import (
	"strings"
	"unicode/utf8"

	"capacity/internal/pkg/errs"
)

const (
	// NameMaxLength is the maximum number of characters of a Name after trimming.
	NameMaxLength = 50
	// DescriptionMaxLength is the maximum number of characters of a Description after trimming.
	DescriptionMaxLength = 90
)

var (
	ErrNameIsNotConstructed        = errs.NewValueIsRequiredError("name must be created via NewName")
	ErrDescriptionIsNotConstructed = errs.NewValueIsRequiredError("description must be created via NewDescription")
)

// Name is the trimmed, non-blank name of a capacity or technology.
// It never holds more than NameMaxLength characters.
type Name struct {
	value string
}

// NewName trims value and checks it is neither blank nor longer than NameMaxLength.
//
// Example:
//
//	name, err := kernel.NewName("  Backend Development ")
//	// name.Value() == "Backend Development"
func NewName(value string) (Name, error) {
	v, err := boundedText("name", value, NameMaxLength)
	if err != nil {
		return Name{}, err
	}
	return Name{value: v}, nil
}

// Value returns the trimmed name.
func (n Name) Value() string {
	return n.value
}

func (n Name) String() string {
	return n.value
}

// IsEqual compares names by exact, case-sensitive value.
func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

// Validate returns ErrNameIsNotConstructed for the zero value.
func (n Name) Validate() error {
	if n.value == "" {
		return ErrNameIsNotConstructed
	}
	return nil
}

// Description is the trimmed, non-blank description of a capacity or technology.
// It never holds more than DescriptionMaxLength characters.
type Description struct {
	value string
}

// NewDescription trims value and checks it is neither blank nor longer than
// DescriptionMaxLength.
func NewDescription(value string) (Description, error) {
	v, err := boundedText("description", value, DescriptionMaxLength)
	if err != nil {
		return Description{}, err
	}
	return Description{value: v}, nil
}

// Value returns the trimmed description.
func (d Description) Value() string {
	return d.value
}

func (d Description) String() string {
	return d.value
}

// Validate returns ErrDescriptionIsNotConstructed for the zero value.
func (d Description) Validate() error {
	if d.value == "" {
		return ErrDescriptionIsNotConstructed
	}
	return nil
}

func boundedText(param, value string, maxLength int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError(param)
	}

	if length := utf8.RuneCountInString(trimmed); length > maxLength {
		return "", errs.NewValueIsOutOfRangeError(param, length, 1, maxLength)
	}

	return trimmed, nil
}
