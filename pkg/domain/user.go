package domain

import "github.com/google/uuid"

// UserID identifies an API caller. It is taken from the subject of the bearer token.
type UserID uuid.UUID

// String returns the canonical UUID form.
func (id UserID) String() string { return uuid.UUID(id).String() }
