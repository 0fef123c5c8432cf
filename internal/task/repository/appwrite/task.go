package appwrite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task/repository"
	pkgAppwrite "mobile-todo-backend/pkg/appwrite"
	pkgLog "mobile-todo-backend/pkg/log"
)

const defaultPageSize = 100

type implRepository struct {
	client *pkgAppwrite.Client
	l      pkgLog.Logger
}

// New creates a new Appwrite-backed task repository.
func New(client *pkgAppwrite.Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = defaultPageSize
	}

	rows, err := r.client.ListRows(ctx, limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to list rows: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		t := rowToTask(row)
		if opt.OwnerID != "" && t.OwnerID != opt.OwnerID {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	var dueDate *string
	if opt.DueDate != nil {
		s := opt.DueDate.Format(time.RFC3339)
		dueDate = &s
	}

	// Client-generated row ID, the ID.unique() analogue.
	rowID := uuid.NewString()

	row, err := r.client.CreateRow(ctx, rowID, pkgAppwrite.TaskData{
		Title:       opt.Title,
		Description: opt.Description,
		IsCompleted: false,
		DueDate:     dueDate,
		OwnerID:     opt.OwnerID,
	})
	if err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to create row: %v", err)
		return model.Task{}, err
	}

	return rowToTask(*row), nil
}

func (r *implRepository) UpdateTaskCompletion(ctx context.Context, taskID string, isCompleted bool) error {
	if _, err := r.client.UpdateRow(ctx, taskID, map[string]any{"isCompleted": isCompleted}); err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to update row %s: %v", taskID, err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteTask(ctx context.Context, taskID string) error {
	if err := r.client.DeleteRow(ctx, taskID); err != nil {
		r.l.Errorf(ctx, "appwrite repository: failed to delete row %s: %v", taskID, err)
		return err
	}
	return nil
}

// rowToTask converts an Appwrite row to the internal model.Task.
// Unparseable timestamps are left zero rather than failing the row.
func rowToTask(row pkgAppwrite.TaskRow) model.Task {
	t := model.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		IsCompleted: row.IsCompleted,
		OwnerID:     row.OwnerID,
	}

	if createdAt, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
		t.CreatedAt = createdAt
	}
	if updatedAt, err := time.Parse(time.RFC3339, row.UpdatedAt); err == nil {
		t.UpdatedAt = updatedAt
	}
	if row.DueDate != nil && *row.DueDate != "" {
		if dueDate, err := time.Parse(time.RFC3339, *row.DueDate); err == nil {
			t.DueDate = &dueDate
		}
	}
	return t
}
