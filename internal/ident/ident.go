// Package ident generates row identifiers for all inserted entities.
package ident

import "github.com/google/uuid"

// NewID returns a random version-4 UUID in canonical string form.
// Uniqueness is probabilistic; primary-key constraints in the store are
// the backstop for the (practically impossible) collision case.
func NewID() string {
	return uuid.NewString()
}
