package http

import (
	"mobile-todo-backend/internal/auth"
	pkgLog "mobile-todo-backend/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Register(c interface{})
	Login(c interface{})
	Logout(c interface{})
	Me(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l pkgLog.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
