package domain

import (
	"github.com/google/uuid"

	dErrors "permitdesk/pkg/domain-errors"
)

// PermitID uniquely identifies a permit record. A distinct type keeps permit
// identifiers from being confused with other UUIDs at compile time.
type PermitID uuid.UUID

// NewPermitID generates a fresh permit identifier.
func NewPermitID() PermitID {
	return PermitID(uuid.New())
}

// ParsePermitID constructs a PermitID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID.
func ParsePermitID(s string) (PermitID, error) {
	if s == "" {
		return PermitID{}, dErrors.New(dErrors.CodeInvalidInput, "permit id cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return PermitID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "permit id is not a valid uuid")
	}
	if id == uuid.Nil {
		return PermitID{}, dErrors.New(dErrors.CodeInvalidInput, "permit id cannot be the nil uuid")
	}
	return PermitID(id), nil
}

// String returns the canonical uuid representation.
func (id PermitID) String() string {
	return uuid.UUID(id).String()
}

// IsZero reports whether the id is unset.
func (id PermitID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}
