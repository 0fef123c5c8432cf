package http

import (
	"mobile-todo-backend/internal/task"
	pkgLog "mobile-todo-backend/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c interface{})
	Create(c interface{})
	ToggleCompletion(c interface{})
	Delete(c interface{})
	Undo(c interface{})
	DismissToast(c interface{})
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
