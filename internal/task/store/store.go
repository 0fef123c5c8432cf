package store

import (
	"sort"
	"sync"
	"time"

	"mobile-todo-backend/internal/model"
)

// Store holds the authoritative in-memory task collection, ordered
// newest-first. It is the single mutable source of truth for reads;
// every writer computes the full next collection and replaces it
// wholesale, so there are no partial in-place mutation paths.
type Store struct {
	mu    sync.RWMutex
	tasks []model.Task
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// ReplaceAll assigns the full collection.
// Used for the initial load and for every derived update
// (toggle, insert, remove) computed by the caller.
func (s *Store) ReplaceAll(tasks []model.Task) {
	next := make([]model.Task, len(tasks))
	copy(next, tasks)

	s.mu.Lock()
	s.tasks = next
	s.mu.Unlock()
}

// Get returns a snapshot copy of the collection.
func (s *Store) Get() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]model.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	return snapshot
}

// Buckets is the derived today/inbox/completed projection.
// It is recomputed on every call, never stored.
type Buckets struct {
	Today     []model.Task
	Inbox     []model.Task
	Completed []model.Task
}

// Buckets partitions the collection relative to now:
// completed tasks go to Completed; incomplete tasks due today (date-only
// comparison) go to Today; every other incomplete task, including those
// with no due date or a past/future due date, goes to Inbox.
func (s *Store) Buckets(now time.Time) Buckets {
	tasks := s.Get()

	var b Buckets
	for _, t := range tasks {
		switch {
		case t.IsCompleted:
			b.Completed = append(b.Completed, t)
		case t.DueOn(now):
			b.Today = append(b.Today, t)
		default:
			b.Inbox = append(b.Inbox, t)
		}
	}
	return b
}

// SortByCreatedDesc sorts tasks newest-first in place and returns the slice.
// Restored tasks are merged through this so their position reflects the
// original creation time, not the restore time.
func SortByCreatedDesc(tasks []model.Task) []model.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks
}
