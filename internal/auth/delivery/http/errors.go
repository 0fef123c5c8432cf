package http

import (
	"errors"
	"net/http"

	"mobile-todo-backend/internal/auth"
	pkgErrors "mobile-todo-backend/pkg/errors"
	"mobile-todo-backend/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, auth.ErrInvalidEmail.Error())
	case errors.Is(err, auth.ErrWeakPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, auth.ErrWeakPassword.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, auth.ErrEmailTaken.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
	case errors.Is(err, auth.ErrUnauthenticated):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, auth.ErrUnauthenticated.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
