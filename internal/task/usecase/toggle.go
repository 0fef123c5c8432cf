package usecase

import (
	"context"
	"fmt"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
)

// ToggleCompletion flips the completion flag locally first, then persists
// it through the gateway. A gateway failure rolls the local flip back so
// the store never drifts from durable state. Due dates are untouched.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, input task.ToggleInput) error {
	if !uc.setCompleted(input.TaskID, input.IsCompleted) {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.UpdateTaskCompletion(ctx, input.TaskID, input.IsCompleted); err != nil {
		uc.setCompleted(input.TaskID, !input.IsCompleted)
		return fmt.Errorf("failed to update task completion: %w", err)
	}

	return nil
}

// setCompleted maps the collection to a copy with the task's flag set,
// replacing the whole collection. Returns false if the id is not visible.
func (uc *implUseCase) setCompleted(taskID string, isCompleted bool) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks := uc.store.Get()
	found := false
	for i, t := range tasks {
		if t.ID == taskID {
			tasks[i].IsCompleted = isCompleted
			found = true
			break
		}
	}
	if !found {
		return false
	}

	uc.store.ReplaceAll(tasks)
	return true
}
