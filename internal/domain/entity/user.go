// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a single student account. The password never appears here
// in plaintext; only the salted bcrypt hash is stored.
type User struct {
	ID           string    // Document identifier (hex string).
	Email        string    // Unique login identifier.
	FullName     string    // The student's display name.
	PasswordHash string    // Salted one-way hash of the password. Never exposed in responses.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
