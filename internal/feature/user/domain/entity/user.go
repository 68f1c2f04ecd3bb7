// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered user.
// Fields a client did not send stay nil and are persisted as NULL.
type User struct {
	// ID is assigned by the store and never changes.
	ID uint

	// Name is required by the store (NOT NULL).
	Name *string

	// Email is optional but unique across all users when set.
	Email *string

	// Password is stored exactly as received.
	Password *string

	// CreatedAt is set by the store on insert.
	CreatedAt time.Time
}
