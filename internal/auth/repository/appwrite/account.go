package appwrite

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"mobile-todo-backend/internal/auth"
	"mobile-todo-backend/internal/auth/repository"
	"mobile-todo-backend/internal/model"
	pkgAppwrite "mobile-todo-backend/pkg/appwrite"
	pkgLog "mobile-todo-backend/pkg/log"
)

type implRepository struct {
	client *pkgAppwrite.Client
	l      pkgLog.Logger
}

// New creates a new Appwrite-backed account repository.
func New(client *pkgAppwrite.Client, l pkgLog.Logger) repository.AccountRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	// Client-generated user ID, the ID.unique() analogue.
	userID := uuid.NewString()

	user, err := r.client.CreateAccount(ctx, userID, opt.Email, opt.Password, opt.Name)
	if err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to create account: %v", err)
		return model.User{}, mapAPIError(err)
	}
	return userToModel(*user), nil
}

func (r *implRepository) CreateSession(ctx context.Context, email, password string) (model.Session, error) {
	session, err := r.client.CreateEmailSession(ctx, email, password)
	if err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to create session: %v", err)
		return model.Session{}, mapAPIError(err)
	}

	s := model.Session{
		ID:       session.ID,
		UserID:   session.UserID,
		Secret:   session.Secret,
		Provider: session.Provider,
	}
	if expiresAt, parseErr := time.Parse(time.RFC3339, session.Expire); parseErr == nil {
		s.ExpiresAt = expiresAt
	}
	return s, nil
}

func (r *implRepository) GetUserBySession(ctx context.Context, sessionSecret string) (model.User, error) {
	user, err := r.client.GetAccount(ctx, sessionSecret)
	if err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to get account: %v", err)
		var apiErr *pkgAppwrite.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return model.User{}, auth.ErrUnauthenticated
		}
		return model.User{}, err
	}
	return userToModel(*user), nil
}

func (r *implRepository) DeleteSession(ctx context.Context, sessionSecret string) error {
	if err := r.client.DeleteCurrentSession(ctx, sessionSecret); err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to delete session: %v", err)
		return mapAPIError(err)
	}
	return nil
}

// mapAPIError translates gateway status codes into auth domain errors.
func mapAPIError(err error) error {
	var apiErr *pkgAppwrite.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return auth.ErrInvalidCredentials
	case http.StatusConflict:
		return auth.ErrEmailTaken
	default:
		return err
	}
}

// userToModel converts an Appwrite account to the internal model.User.
// An unparseable timestamp is left zero rather than failing the account.
func userToModel(user pkgAppwrite.User) model.User {
	u := model.User{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
	if createdAt, err := time.Parse(time.RFC3339, user.CreatedAt); err == nil {
		u.CreatedAt = createdAt
	}
	return u
}
