package usecase

import (
	"context"
	"testing"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/store"
)

func newDeleteFixture(grace time.Duration, repo *mockRepo, tasks []model.Task) (*implUseCase, *store.Store) {
	st := store.New()
	st.ReplaceAll(tasks)
	uc := New(&mockLogger{}, &mockGeminiClient{}, repo, st, Config{GraceWindow: grace})
	return uc, st
}

func threeTasks() []model.Task {
	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: "c", Title: "Newest", CreatedAt: t0.Add(2 * time.Hour)},
		{ID: "b", Title: "Middle", CreatedAt: t0.Add(time.Hour)},
		{ID: "a", Title: "Buy milk", CreatedAt: t0},
	}
}

func TestDeleteThenUndoRoundTrip(t *testing.T) {
	repo := &mockRepo{}
	uc, st := newDeleteFixture(time.Hour, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if err := uc.ScheduleDelete(ctx, sc, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := st.Get(); len(got) != 2 {
		t.Fatalf("expected task removed immediately, got %d tasks", len(got))
	}

	out, _ := uc.List(ctx, sc)
	if !out.Toast.Visible || out.Toast.TaskID != "b" || out.Toast.TaskTitle != "Middle" {
		t.Errorf("unexpected toast: %+v", out.Toast)
	}

	if err := uc.Undo(ctx, sc, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := st.Get()
	if len(got) != 3 {
		t.Fatalf("expected full collection restored, got %d tasks", len(got))
	}
	// Restored at the position implied by createdAt descending.
	for i, want := range []string{"c", "b", "a"} {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}

	out, _ = uc.List(ctx, sc)
	if out.Toast.Visible {
		t.Error("expected toast hidden after undo")
	}
	if repo.deleteCallCount() != 0 {
		t.Errorf("expected no gateway delete, got %d", repo.deleteCallCount())
	}
}

func TestDeleteCommitsAfterGrace(t *testing.T) {
	repo := &mockRepo{}
	uc, st := newDeleteFixture(20*time.Millisecond, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if err := uc.ScheduleDelete(ctx, sc, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !waitFor(2*time.Second, func() bool { return repo.deleteCallCount() == 1 }) {
		t.Fatal("expected exactly one gateway delete call")
	}

	for _, task := range st.Get() {
		if task.ID == "a" {
			t.Error("expected task absent after commit")
		}
	}

	out, _ := uc.List(ctx, sc)
	if out.Toast.Visible {
		t.Error("expected toast hidden after commit")
	}
}

func TestDoubleDeleteSingleCommit(t *testing.T) {
	repo := &mockRepo{}
	uc, _ := newDeleteFixture(30*time.Millisecond, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if err := uc.ScheduleDelete(ctx, sc, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.ScheduleDelete(ctx, sc, "a"); err != nil {
		t.Fatalf("expected re-arm to succeed, got: %v", err)
	}

	uc.mu.Lock()
	pendingCount := len(uc.pending)
	uc.mu.Unlock()
	if pendingCount != 1 {
		t.Fatalf("expected one pending record, got %d", pendingCount)
	}

	if !waitFor(2*time.Second, func() bool { return repo.deleteCallCount() >= 1 }) {
		t.Fatal("expected commit to fire")
	}
	// Give a stale second timer a chance to misfire before asserting.
	time.Sleep(100 * time.Millisecond)
	if repo.deleteCallCount() != 1 {
		t.Errorf("expected exactly one gateway delete, got %d", repo.deleteCallCount())
	}
}

func TestUndoAfterExpiryIsNoop(t *testing.T) {
	repo := &mockRepo{}
	uc, st := newDeleteFixture(15*time.Millisecond, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	uc.ScheduleDelete(ctx, sc, "a")
	if !waitFor(2*time.Second, func() bool { return repo.deleteCallCount() == 1 }) {
		t.Fatal("expected commit to fire")
	}

	if err := uc.Undo(ctx, sc, "a"); err != nil {
		t.Fatalf("expected no-op undo, got: %v", err)
	}

	for _, task := range st.Get() {
		if task.ID == "a" {
			t.Error("expected no reinsert after late undo")
		}
	}
	if repo.deleteCallCount() != 1 {
		t.Errorf("expected no second gateway call, got %d", repo.deleteCallCount())
	}
}

func TestFailedCommitRestoresVisibility(t *testing.T) {
	repo := &mockRepo{failDelete: true}
	uc, st := newDeleteFixture(15*time.Millisecond, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	uc.ScheduleDelete(ctx, sc, "b")

	restored := waitFor(2*time.Second, func() bool {
		for _, task := range st.Get() {
			if task.ID == "b" {
				return true
			}
		}
		return false
	})
	if !restored {
		t.Fatal("expected task restored after failed commit")
	}

	got := st.Get()
	for i, want := range []string{"c", "b", "a"} {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}

	out, _ := uc.List(ctx, sc)
	if out.Toast.Visible {
		t.Error("expected toast hidden after failed commit")
	}
}

func TestDeleteUnknownTask(t *testing.T) {
	repo := &mockRepo{}
	uc, _ := newDeleteFixture(time.Hour, repo, threeTasks())

	err := uc.ScheduleDelete(context.Background(), model.Scope{}, "nope")
	if err != task.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestToastSingleSlot(t *testing.T) {
	repo := &mockRepo{}
	uc, _ := newDeleteFixture(time.Hour, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	uc.ScheduleDelete(ctx, sc, "a")
	uc.ScheduleDelete(ctx, sc, "b")

	out, _ := uc.List(ctx, sc)
	if out.Toast.TaskID != "b" {
		t.Errorf("expected toast repointed to newest delete, got %+v", out.Toast)
	}

	// The first deletion is still pending and can be undone by id.
	if err := uc.Undo(ctx, sc, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.mu.Lock()
	_, stillPending := uc.pending["b"]
	uc.mu.Unlock()
	if !stillPending {
		t.Error("expected second deletion still pending after undoing first")
	}
}

func TestDismissToastKeepsPending(t *testing.T) {
	repo := &mockRepo{}
	uc, _ := newDeleteFixture(time.Hour, repo, threeTasks())
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	uc.ScheduleDelete(ctx, sc, "a")
	uc.DismissToast(ctx, sc)

	out, _ := uc.List(ctx, sc)
	if out.Toast.Visible {
		t.Error("expected toast hidden")
	}

	uc.mu.Lock()
	_, stillPending := uc.pending["a"]
	uc.mu.Unlock()
	if !stillPending {
		t.Error("expected pending deletion unaffected by dismiss")
	}
}

func TestConcreteBuyMilkScenario(t *testing.T) {
	t0 := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	repo := &mockRepo{}
	uc, st := newDeleteFixture(time.Hour, repo, []model.Task{
		{ID: "a", Title: "Buy milk", CreatedAt: t0},
	})
	ctx := context.Background()
	sc := model.Scope{UserID: "user-1"}

	if err := uc.ScheduleDelete(ctx, sc, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := st.Get(); len(got) != 0 {
		t.Fatalf("expected empty collection, got %d", len(got))
	}
	out, _ := uc.List(ctx, sc)
	want := task.UndoToast{Visible: true, TaskID: "a", TaskTitle: "Buy milk"}
	if out.Toast != want {
		t.Errorf("toast = %+v, want %+v", out.Toast, want)
	}

	if err := uc.Undo(ctx, sc, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := st.Get()
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("expected task restored, got %+v", got)
	}
	out, _ = uc.List(ctx, sc)
	if out.Toast.Visible {
		t.Error("expected toast hidden")
	}
}
