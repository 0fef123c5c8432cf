package task

import (
	"context"

	"mobile-todo-backend/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Refresh pulls the task collection from the gateway and replaces the
	// in-memory store. Tasks with a pending deletion are kept hidden.
	Refresh(ctx context.Context, sc model.Scope) error

	// List returns the grouped read-only projection of the store
	// plus the current undo toast.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)

	// Create routes raw text to direct or AI-assisted creation,
	// persists the task, and prepends it to the store.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// ToggleCompletion flips a task's completion flag locally and
	// persists it through the gateway, rolling back on failure.
	ToggleCompletion(ctx context.Context, sc model.Scope, input ToggleInput) error

	// ScheduleDelete removes the task from view immediately and arms the
	// grace-window timer that commits the deletion to the gateway.
	ScheduleDelete(ctx context.Context, sc model.Scope, taskID string) error

	// Undo cancels a pending deletion and restores the task.
	// A no-op once the grace window has elapsed.
	Undo(ctx context.Context, sc model.Scope, taskID string) error

	// DismissToast hides the undo toast without touching pending deletions.
	DismissToast(ctx context.Context, sc model.Scope)
}
