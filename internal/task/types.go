package task

import "mobile-todo-backend/internal/model"

// CreateInput is the input for task creation.
type CreateInput struct {
	Text   string // Raw user input
	AIMode bool   // true routes through the LLM extraction path
}

// ToggleInput is the input for toggling task completion.
type ToggleInput struct {
	TaskID      string
	IsCompleted bool
}

// UndoToast is the UI-facing projection of the pending-deletion state.
// It tracks a single slot: a newer delete repoints it to the newer task.
type UndoToast struct {
	Visible   bool   `json:"visible"`
	TaskID    string `json:"task_id"`
	TaskTitle string `json:"task_title"`
}

// ListOutput is the grouped read-only task list.
type ListOutput struct {
	Today     []model.Task
	Inbox     []model.Task
	Completed []model.Task
	Toast     UndoToast
}
