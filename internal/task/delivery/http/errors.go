package http

import (
	"errors"
	"net/http"

	"mobile-todo-backend/internal/task"
	pkgErrors "mobile-todo-backend/pkg/errors"
	"mobile-todo-backend/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrEmptyInput.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrUnsupportedAction):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, task.ErrUnsupportedAction.Error())
	case errors.Is(err, task.ErrRateLimited):
		return pkgErrors.NewHTTPError(http.StatusTooManyRequests, task.ErrRateLimited.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
