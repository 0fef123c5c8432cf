package model

import "time"

// Task represents a to-do item stored in Appwrite.
type Task struct {
	ID          string     // Appwrite row ID, assigned at creation, never reused
	Title       string     // Non-empty display string
	Description string     // Optional free text
	IsCompleted bool       // Completion flag, independent of DueDate
	DueDate     *time.Time // nil means "no due date"
	CreatedAt   time.Time  // Server-assigned, sort key for restoring undone deletions
	UpdatedAt   time.Time
	OwnerID     string // Owning user, enforced at the gateway query layer
}

// DueOn reports whether the task is due on the given day.
// Comparison is date-only; time of day is ignored.
func (t Task) DueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// User represents an authenticated Appwrite account.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}
