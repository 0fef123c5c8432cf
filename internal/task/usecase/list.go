package usecase

import (
	"context"
	"fmt"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/repository"
)

// Refresh pulls the task collection from the gateway and replaces the
// store. A task whose deletion is still pending stays hidden even though
// the gateway row still exists, so a refresh cannot resurrect it.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope) error {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OwnerID: sc.UserID,
	})
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.pending) > 0 {
		visible := tasks[:0]
		for _, t := range tasks {
			if _, hidden := uc.pending[t.ID]; hidden {
				continue
			}
			visible = append(visible, t)
		}
		tasks = visible
	}

	uc.store.ReplaceAll(tasks)
	uc.l.Infof(ctx, "task usecase: refreshed %d tasks for user %s", len(tasks), sc.UserID)
	return nil
}

// List returns the derived today/inbox/completed projection and the
// current undo toast. Pure read; nothing is fetched or mutated.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	buckets := uc.store.Buckets(time.Now().In(uc.location))

	uc.mu.Lock()
	toast := uc.toast
	uc.mu.Unlock()

	return task.ListOutput{
		Today:     buckets.Today,
		Inbox:     buckets.Inbox,
		Completed: buckets.Completed,
		Toast:     toast,
	}, nil
}
