package kernel

import (
	"strings"

	"sendsafe/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrIDIsNotConstructed indicates that an ID was not initialized through NewID or IDFromString.
// It is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or IDFromString")

// ID is an immutable identifier for an aggregate. It wraps a string token so
// that generated UUIDs and legacy identifiers read from storage share one type.
//
// The zero value of ID is invalid and must be constructed using NewID or IDFromString.
//
// Example usage:
//
//	// Mint an identifier for a new order
//	id := kernel.NewID()
//
//	// Restore an identifier read from storage
//	id, err := kernel.IDFromString("1718000000000")
//	if err != nil {
//	    // handle error
//	}
type ID struct {
	value string
}

// NewID generates a new random identifier backed by a version 4 UUID.
//
// Example:
//
//	orderID := kernel.NewID()
//	fmt.Println(orderID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// IDFromString restores an identifier from its string form.
// Surrounding whitespace is trimmed; a blank string is rejected.
func IDFromString(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	return ID{value: s}, nil
}

// String returns the identifier token.
func (i ID) String() string {
	return i.value
}

// IsUUID reports whether the identifier parses as a UUID.
// Legacy identifiers restored from storage usually do not.
func (i ID) IsUUID() bool {
	return uuid.Validate(i.value) == nil
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate returns ErrIDIsNotConstructed for a zero-value ID.
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
