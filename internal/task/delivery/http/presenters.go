package http

import (
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Text   string `json:"text"`
	AIMode bool   `json:"ai_mode"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Text:   r.Text,
		AIMode: r.AIMode,
	}
}

// ---

type toggleReq struct {
	TaskID      string `json:"-"` // populated from URI param
	IsCompleted *bool  `json:"is_completed" binding:"required"`
}

func (r toggleReq) validate() error { return nil }

func (r toggleReq) toInput() task.ToggleInput {
	return task.ToggleInput{
		TaskID:      r.TaskID,
		IsCompleted: *r.IsCompleted,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	IsCompleted bool      `json:"is_completed"`
	DueDate     *string   `json:"due_date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		s := t.DueDate.Format(time.RFC3339)
		resp.DueDate = &s
	}
	return resp
}

func newTaskResps(tasks []model.Task) []taskResp {
	resps := make([]taskResp, len(tasks))
	for i, t := range tasks {
		resps[i] = newTaskResp(t)
	}
	return resps
}

type listResp struct {
	Today     []taskResp     `json:"today"`
	Inbox     []taskResp     `json:"inbox"`
	Completed []taskResp     `json:"completed"`
	Toast     task.UndoToast `json:"toast"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	return listResp{
		Today:     newTaskResps(out.Today),
		Inbox:     newTaskResps(out.Inbox),
		Completed: newTaskResps(out.Completed),
		Toast:     out.Toast,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(created model.Task) createResp {
	return createResp{Task: newTaskResp(created)}
}
