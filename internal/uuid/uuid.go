// Package uuid wraps github.com/google/uuid so that identifiers can be
// bound directly from gin URI and query parameters.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// From wraps an existing google/uuid value.
func From(u google_uuid.UUID) UUID {
	return UUID{u}
}

// Parse parses s. The empty string parses to Nil.
func Parse(s string) (UUID, error) {
	if s == "" {
		return Nil, nil
	}

	parsed, err := google_uuid.Parse(s)
	if err != nil {
		return Nil, ErrInvalid
	}

	return UUID{parsed}, nil
}

// IsNil reports whether the UUID is the nil UUID.
func (u UUID) IsNil() bool {
	return u.UUID == google_uuid.Nil
}

// UnmarshalParam is used by gin to bind URI and query parameters.
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}
