package appwrite

import "fmt"

// APIError is a non-2xx response from the Appwrite API.
type APIError struct {
	StatusCode int
	Operation  string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("appwrite API %s error %d: %s", e.Operation, e.StatusCode, e.Body)
}

// TaskRow is the Appwrite row object for the tasks table.
// System fields carry a $ prefix on the wire.
type TaskRow struct {
	ID          string  `json:"$id"`
	CreatedAt   string  `json:"$createdAt"`
	UpdatedAt   string  `json:"$updatedAt"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
	DueDate     *string `json:"dueDate"`
	OwnerID     string  `json:"ownerId"`
}

// TaskData is the user payload for row creation.
type TaskData struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
	DueDate     *string `json:"dueDate"`
	OwnerID     string  `json:"ownerId,omitempty"`
}

// createRowRequest is the body for POST .../rows.
type createRowRequest struct {
	RowID string   `json:"rowId"`
	Data  TaskData `json:"data"`
}

// User is the Appwrite account object.
type User struct {
	ID        string `json:"$id"`
	CreatedAt string `json:"$createdAt"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

// Session is the Appwrite session object.
// Secret is only populated on session creation with a server key.
type Session struct {
	ID       string `json:"$id"`
	UserID   string `json:"userId"`
	Secret   string `json:"secret"`
	Expire   string `json:"expire"`
	Provider string `json:"provider"`
}
