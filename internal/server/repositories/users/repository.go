// Package users contains the durable user store.
package users

import (
	"context"

	"github.com/avoronov/authkeeper/internal/server/models"
)

// Repository is the contract the auth service needs from the user store.
// Lookups return common.ErrorNotFound for missing rows; Create returns
// common.ErrorEmailExists when the email is already taken, which is how
// concurrent registrations for the same email are resolved — the unique
// index decides, not the service.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
