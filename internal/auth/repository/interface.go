package repository

import (
	"context"

	"mobile-todo-backend/internal/model"
)

// AccountRepository abstracts the account and session gateway.
type AccountRepository interface {
	// CreateUser registers a new account.
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)

	// CreateSession opens an email/password session.
	CreateSession(ctx context.Context, email, password string) (model.Session, error)

	// GetUserBySession returns the account a session secret belongs to.
	GetUserBySession(ctx context.Context, sessionSecret string) (model.User, error)

	// DeleteSession invalidates the session behind the secret.
	DeleteSession(ctx context.Context, sessionSecret string) error
}
