package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"mobile-todo-backend/internal/auth"
	"mobile-todo-backend/internal/auth/repository"
	"mobile-todo-backend/internal/model"
)

// Register creates the account, then immediately opens a session so the
// caller lands signed in. A session failure after a successful account
// creation is surfaced as an error; the account itself survives and the
// user can log in normally.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.Output, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.Output{}, err
	}
	if len(input.Password) < minPasswordLength {
		return auth.Output{}, auth.ErrWeakPassword
	}

	user, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:    email,
		Password: input.Password,
		Name:     strings.TrimSpace(input.Name),
	})
	if err != nil {
		return auth.Output{}, fmt.Errorf("failed to create account: %w", err)
	}

	session, err := uc.repo.CreateSession(ctx, email, input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "auth usecase: account %s created but session failed: %v", user.ID, err)
		return auth.Output{}, fmt.Errorf("failed to create session: %w", err)
	}

	uc.l.Infof(ctx, "auth usecase: registered user %s", user.ID)
	return auth.Output{User: user, Session: session}, nil
}

// Login opens an email/password session and resolves the account behind it.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.Output, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.Output{}, err
	}

	session, err := uc.repo.CreateSession(ctx, email, input.Password)
	if err != nil {
		return auth.Output{}, err
	}

	user, err := uc.repo.GetUserBySession(ctx, session.Secret)
	if err != nil {
		return auth.Output{}, fmt.Errorf("failed to resolve account: %w", err)
	}

	uc.l.Infof(ctx, "auth usecase: user %s logged in", user.ID)
	return auth.Output{User: user, Session: session}, nil
}

// Logout invalidates the caller's session at the gateway.
func (uc *implUseCase) Logout(ctx context.Context, sc model.Scope) error {
	if sc.Session == "" {
		return auth.ErrUnauthenticated
	}
	if err := uc.repo.DeleteSession(ctx, sc.Session); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Me returns the account bound to the caller's session.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	if sc.Session == "" {
		return model.User{}, auth.ErrUnauthenticated
	}
	return uc.repo.GetUserBySession(ctx, sc.Session)
}

// normalizeEmail lowercases and validates the address.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", auth.ErrInvalidEmail
	}
	return email, nil
}
