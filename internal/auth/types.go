package auth

import "mobile-todo-backend/internal/model"

// RegisterInput is the input for account registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput is the input for opening a session.
type LoginInput struct {
	Email    string
	Password string
}

// Output pairs an account with its freshly created session.
type Output struct {
	User    model.User
	Session model.Session
}
