package repository

import "time"

// ListTasksOptions defines list parameters.
// The gateway returns at most one page; Limit caps the page size.
type ListTasksOptions struct {
	OwnerID string
	Limit   int
	Offset  int
}

// CreateTaskOptions defines creation parameters.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     *time.Time
	OwnerID     string
}
