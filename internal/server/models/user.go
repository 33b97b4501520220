// Package models defines the server-side data model.
package models

import "time"

// User is a registered identity. PasswordHash is the bcrypt digest of the
// user's password; it never leaves the service layer — every value returned
// across the gRPC boundary has it stripped.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Sanitized returns a copy of the user with the password hash removed.
func (u *User) Sanitized() *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
