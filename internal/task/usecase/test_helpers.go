package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task/repository"
	"mobile-todo-backend/pkg/gemini"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// Mock task repository for testing. Timer callbacks call into it from
// their own goroutine, so all state is mutex-guarded.
type mockRepo struct {
	mu sync.Mutex

	listResult []model.Task
	listErr    error

	failCreate bool
	failUpdate bool
	failDelete bool

	createOpts  []repository.CreateTaskOptions
	updateCalls []string
	deleteCalls []string
}

func (m *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]model.Task(nil), m.listResult...), nil
}

func (m *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failCreate {
		return model.Task{}, errors.New("gateway create error")
	}
	m.createOpts = append(m.createOpts, opt)
	return model.Task{
		ID:          "task-created",
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		OwnerID:     opt.OwnerID,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *mockRepo) UpdateTaskCompletion(ctx context.Context, taskID string, isCompleted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failUpdate {
		return errors.New("gateway update error")
	}
	m.updateCalls = append(m.updateCalls, taskID)
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, taskID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteCalls = append(m.deleteCalls, taskID)
	if m.failDelete {
		return errors.New("gateway delete error")
	}
	return nil
}

func (m *mockRepo) deleteCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deleteCalls)
}

func (m *mockRepo) createdOpts() []repository.CreateTaskOptions {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]repository.CreateTaskOptions(nil), m.createOpts...)
}

// Mock Gemini client for testing
type mockGeminiClient struct {
	mu       sync.Mutex
	response *gemini.Response
	err      error
	calls    int
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.response, m.err
}

func (m *mockGeminiClient) Model() string {
	return "gemini-test"
}

func (m *mockGeminiClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// textResponse wraps raw text as a single-candidate Gemini response.
func textResponse(text string) *gemini.Response {
	return &gemini.Response{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(timeout time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
