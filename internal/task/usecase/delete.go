package usecase

import (
	"context"
	"time"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/store"
)

// ScheduleDelete starts the optimistic deletion of a visible task:
// the task disappears immediately, the undo toast points at it, and a
// timer is armed to commit the deletion once the grace window elapses.
// Scheduling again for an id that is already pending re-arms its timer
// instead of racing a second commit.
func (uc *implUseCase) ScheduleDelete(ctx context.Context, sc model.Scope, taskID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot, ok := uc.takeSnapshotLocked(taskID)
	if !ok {
		return task.ErrTaskNotFound
	}

	uc.toast = task.UndoToast{
		Visible:   true,
		TaskID:    taskID,
		TaskTitle: snapshot.Title,
	}

	pd := &pendingDeletion{
		task:     snapshot,
		commitAt: time.Now().Add(uc.grace),
	}
	pd.timer = time.AfterFunc(uc.grace, func() {
		uc.commit(taskID, pd)
	})
	uc.pending[taskID] = pd

	uc.l.Infof(ctx, "task usecase: scheduled delete of %s, commit in %s", taskID, uc.grace)
	return nil
}

// takeSnapshotLocked locates the task to delete and removes it from the
// visible collection. If the id is already pending, the existing snapshot
// is reused and its timer stopped. Callers must hold uc.mu.
func (uc *implUseCase) takeSnapshotLocked(taskID string) (model.Task, bool) {
	if prev, ok := uc.pending[taskID]; ok {
		prev.timer.Stop()
		return prev.task, true
	}

	tasks := uc.store.Get()
	next := make([]model.Task, 0, len(tasks))
	var snapshot model.Task
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			snapshot = t
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return model.Task{}, false
	}

	uc.store.ReplaceAll(next)
	return snapshot, true
}

// commit runs when the grace timer fires. The pending record is removed
// before the gateway call, so an undo arriving from here on is too late.
// The record identity check keeps a stale timer (one whose Stop lost the
// race with firing) from committing a re-armed deletion early.
func (uc *implUseCase) commit(taskID string, pd *pendingDeletion) {
	uc.mu.Lock()
	if uc.pending[taskID] != pd {
		// Undone, or re-armed by a newer ScheduleDelete.
		uc.mu.Unlock()
		return
	}
	delete(uc.pending, taskID)
	uc.mu.Unlock()

	// Detached from any request context: the user action that started
	// this deletion completed long ago.
	ctx := context.Background()
	err := uc.repo.DeleteTask(ctx, taskID)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err != nil {
		// Silent recovery: restore visibility, log, and move on.
		uc.l.Errorf(ctx, "task usecase: delete commit for %s failed, restoring: %v", taskID, err)
		uc.restoreLocked(pd.task)
		uc.toast = task.UndoToast{}
		return
	}

	uc.l.Infof(ctx, "task usecase: delete of %s committed", taskID)
	if uc.toast.TaskID == taskID {
		uc.toast = task.UndoToast{}
	}
}

// Undo cancels a pending deletion and restores the task at the position
// implied by its creation time. Once the commit has started it is a no-op.
func (uc *implUseCase) Undo(ctx context.Context, sc model.Scope, taskID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	pd, ok := uc.pending[taskID]
	if !ok {
		uc.l.Debugf(ctx, "task usecase: undo for %s ignored, no pending deletion", taskID)
		return nil
	}

	pd.timer.Stop()
	delete(uc.pending, taskID)

	uc.restoreLocked(pd.task)
	uc.toast = task.UndoToast{}

	uc.l.Infof(ctx, "task usecase: undo restored %s", taskID)
	return nil
}

// DismissToast hides the undo toast. Pending deletions keep running.
func (uc *implUseCase) DismissToast(ctx context.Context, sc model.Scope) {
	uc.mu.Lock()
	uc.toast = task.UndoToast{}
	uc.mu.Unlock()
}

// restoreLocked merges a task back into the collection and re-sorts the
// whole collection by creation time descending, so untouched tasks keep
// their relative order. Callers must hold uc.mu.
func (uc *implUseCase) restoreLocked(t model.Task) {
	merged := append(uc.store.Get(), t)
	uc.store.ReplaceAll(store.SortByCreatedDesc(merged))
}
