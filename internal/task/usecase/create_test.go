package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/store"
)

func newCreateFixture(repo *mockRepo, llm *mockGeminiClient, cfg Config) *implUseCase {
	return New(&mockLogger{}, llm, repo, store.New(), cfg)
}

func TestCreateDirect(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{}
	uc := newCreateFixture(repo, llm, Config{})
	sc := model.Scope{UserID: "user-1"}

	created, err := uc.Create(context.Background(), sc, task.CreateInput{Text: "  Buy milk  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Buy milk" {
		t.Errorf("title = %q, want %q", created.Title, "Buy milk")
	}
	if created.OwnerID != "user-1" {
		t.Errorf("owner = %q, want user-1", created.OwnerID)
	}
	if llm.callCount() != 0 {
		t.Errorf("expected no LLM call in direct mode, got %d", llm.callCount())
	}

	got := uc.store.Get()
	if len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("expected created task prepended to collection, got %+v", got)
	}
}

func TestCreateEmptyInput(t *testing.T) {
	uc := newCreateFixture(&mockRepo{}, &mockGeminiClient{}, Config{})

	_, err := uc.Create(context.Background(), model.Scope{}, task.CreateInput{Text: "   "})
	if err != task.ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCreateAIMode(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse(`{"action":"create","title":"Call dentist","description":"Book a checkup","dueDate":"2026-09-01T09:00:00Z"}`),
	}
	uc := newCreateFixture(repo, llm, Config{})
	sc := model.Scope{UserID: "user-1"}

	created, err := uc.Create(context.Background(), sc, task.CreateInput{Text: "call dentist tomorrow at 9", AIMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Call dentist" {
		t.Errorf("title = %q, want %q", created.Title, "Call dentist")
	}
	if created.Description != "Book a checkup" {
		t.Errorf("description = %q", created.Description)
	}
	if created.DueDate == nil {
		t.Fatal("expected due date set")
	}
	want := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	if !created.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", created.DueDate, want)
	}
	if llm.callCount() != 1 {
		t.Errorf("expected one LLM call, got %d", llm.callCount())
	}
}

func TestCreateAIModeFencedJSON(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse("Here you go:\n```json\n{\"action\":\"create\",\"title\":\"Pay rent\",\"description\":\"\",\"dueDate\":\"\"}\n```"),
	}
	uc := newCreateFixture(repo, llm, Config{})

	created, err := uc.Create(context.Background(), model.Scope{UserID: "user-1"}, task.CreateInput{Text: "pay rent", AIMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Title != "Pay rent" {
		t.Errorf("title = %q, want %q", created.Title, "Pay rent")
	}
	if created.DueDate != nil {
		t.Errorf("expected nil due date, got %v", created.DueDate)
	}
}

func TestCreateAIModeUnparseableDueDate(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse(`{"action":"create","title":"Water plants","description":"","dueDate":"next tuesday"}`),
	}
	uc := newCreateFixture(repo, llm, Config{})

	created, err := uc.Create(context.Background(), model.Scope{UserID: "user-1"}, task.CreateInput{Text: "water plants", AIMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.DueDate != nil {
		t.Errorf("expected unparseable due date dropped, got %v", created.DueDate)
	}
}

func TestCreateAIModeUnsupportedAction(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse(`{"action":"delete","title":"Old task","description":"","dueDate":""}`),
	}
	uc := newCreateFixture(repo, llm, Config{})

	_, err := uc.Create(context.Background(), model.Scope{UserID: "user-1"}, task.CreateInput{Text: "delete old task", AIMode: true})
	if !errors.Is(err, task.ErrUnsupportedAction) {
		t.Errorf("expected ErrUnsupportedAction, got %v", err)
	}
	if len(repo.createdOpts()) != 0 {
		t.Error("expected no gateway create for unsupported action")
	}
}

func TestCreateAIModeLLMError(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{err: errors.New("quota exceeded")}
	uc := newCreateFixture(repo, llm, Config{})

	_, err := uc.Create(context.Background(), model.Scope{UserID: "user-1"}, task.CreateInput{Text: "anything", AIMode: true})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := uc.store.Get(); len(got) != 0 {
		t.Errorf("expected collection untouched, got %+v", got)
	}
}

func TestCreateGatewayFailure(t *testing.T) {
	repo := &mockRepo{failCreate: true}
	uc := newCreateFixture(repo, &mockGeminiClient{}, Config{})

	_, err := uc.Create(context.Background(), model.Scope{UserID: "user-1"}, task.CreateInput{Text: "doomed"})
	if err == nil {
		t.Fatal("expected error")
	}
	if got := uc.store.Get(); len(got) != 0 {
		t.Errorf("expected collection untouched, got %+v", got)
	}
}

func TestCreateAIModeRateLimited(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse(`{"action":"create","title":"First","description":"","dueDate":""}`),
	}
	uc := newCreateFixture(repo, llm, Config{AIRequestsPerMin: 1})
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if _, err := uc.Create(ctx, sc, task.CreateInput{Text: "first", AIMode: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := uc.Create(ctx, sc, task.CreateInput{Text: "second", AIMode: true})
	if !errors.Is(err, task.ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestCreateAIModeParseCache(t *testing.T) {
	repo := &mockRepo{}
	llm := &mockGeminiClient{
		response: textResponse(`{"action":"create","title":"Cached","description":"","dueDate":""}`),
	}
	uc := newCreateFixture(repo, llm, Config{})
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if _, err := uc.Create(ctx, sc, task.CreateInput{Text: "same text", AIMode: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Create(ctx, sc, task.CreateInput{Text: "same text", AIMode: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if llm.callCount() != 1 {
		t.Errorf("expected second create to hit the parse cache, got %d LLM calls", llm.callCount())
	}
	if len(repo.createdOpts()) != 2 {
		t.Errorf("expected two gateway creates, got %d", len(repo.createdOpts()))
	}
}
