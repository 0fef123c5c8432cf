package auth

import (
	"context"

	"mobile-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the auth domain.
type UseCase interface {
	// Register creates a new account and immediately opens a session for it.
	Register(ctx context.Context, input RegisterInput) (Output, error)

	// Login opens a session for an existing account.
	Login(ctx context.Context, input LoginInput) (Output, error)

	// Logout invalidates the caller's current session.
	Logout(ctx context.Context, sc model.Scope) error

	// Me returns the account bound to the caller's session.
	Me(ctx context.Context, sc model.Scope) (model.User, error)
}
