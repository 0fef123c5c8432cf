package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/repository"
	"mobile-todo-backend/pkg/gemini"
)

// Create routes raw text to direct or AI-assisted creation, persists the
// task through the gateway, and prepends it to the visible collection.
// On any failure the collection is left untouched.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	opt := repository.CreateTaskOptions{
		Title:   text,
		OwnerID: sc.UserID,
	}

	if input.AIMode {
		if uc.aiLimiter != nil && !uc.aiLimiter.Allow(sc.UserID) {
			uc.l.Warnf(ctx, "task usecase: assisted create throttled for user %s", sc.UserID)
			return model.Task{}, task.ErrRateLimited
		}

		action, err := uc.extractTaskAction(ctx, text)
		if err != nil {
			return model.Task{}, fmt.Errorf("failed to extract task action: %w", err)
		}

		if action.Action != gemini.ActionCreate {
			uc.l.Warnf(ctx, "task usecase: unhandled action %q for input %q", action.Action, text)
			return model.Task{}, fmt.Errorf("%w: %s", task.ErrUnsupportedAction, action.Action)
		}

		opt.Title = action.Title
		opt.Description = action.Description
		if action.DueDate != "" {
			dueDate, parseErr := time.Parse(time.RFC3339, action.DueDate)
			if parseErr != nil {
				uc.l.Warnf(ctx, "task usecase: dropping unparseable due date %q: %v", action.DueDate, parseErr)
			} else {
				opt.DueDate = &dueDate
			}
		}
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.mu.Lock()
	uc.store.ReplaceAll(append([]model.Task{created}, uc.store.Get()...))
	uc.mu.Unlock()

	uc.l.Infof(ctx, "task usecase: created task %s (%q, ai_mode=%t)", created.ID, created.Title, input.AIMode)
	return created, nil
}
