package middleware

import (
	"mobile-todo-backend/internal/auth"
	pkgLog "mobile-todo-backend/pkg/log"
)

type Middleware struct {
	l      pkgLog.Logger
	authUC auth.UseCase
}

func New(l pkgLog.Logger, authUC auth.UseCase) Middleware {
	return Middleware{
		l:      l,
		authUC: authUC,
	}
}
