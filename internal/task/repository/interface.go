package repository

import (
	"context"

	"mobile-todo-backend/internal/model"
)

// TaskRepository is the interface for task data access against the
// remote gateway. It is the single source of durable truth.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	UpdateTaskCompletion(ctx context.Context, taskID string, isCompleted bool) error
	DeleteTask(ctx context.Context, taskID string) error
}
