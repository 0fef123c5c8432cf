package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/internal/task"
	"mobile-todo-backend/internal/task/repository"
	"mobile-todo-backend/internal/task/store"
	"mobile-todo-backend/pkg/gemini"
	pkgLog "mobile-todo-backend/pkg/log"
)

const (
	// DefaultGraceWindow is the delay between optimistic removal and the
	// actual gateway deletion, during which undo is possible.
	DefaultGraceWindow = 4000 * time.Millisecond

	parseCacheSize = 256
	parseCacheTTL  = 5 * time.Minute
)

// Config tunes the task usecase.
type Config struct {
	GraceWindow      time.Duration // 0 means DefaultGraceWindow
	Timezone         string        // IANA name for "today" bucketing, "" means UTC
	AIRequestsPerMin int           // per-user cap on LLM-assisted creation, 0 disables the limiter
}

type implUseCase struct {
	l     pkgLog.Logger
	llm   gemini.IGemini
	repo  repository.TaskRepository
	store *store.Store

	grace    time.Duration
	location *time.Location

	aiLimiter  *limiterPool
	parseCache *expirable.LRU[string, gemini.TaskAction]

	// mu guards pending, toast, and every composite read-modify-write
	// of the store, restoring the one-mutation-at-a-time guarantee the
	// original single-threaded design relied on.
	mu      sync.Mutex
	pending map[string]*pendingDeletion
	toast   task.UndoToast
}

// pendingDeletion ties a removed-from-view task to its scheduled commit.
// Owned exclusively by the usecase; the UI only ever sees the toast.
type pendingDeletion struct {
	task     model.Task
	timer    *time.Timer
	commitAt time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	repo repository.TaskRepository,
	st *store.Store,
	cfg Config,
) *implUseCase {
	grace := cfg.GraceWindow
	if grace <= 0 {
		grace = DefaultGraceWindow
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		if parsed, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = parsed
		}
	}

	var limiter *limiterPool
	if cfg.AIRequestsPerMin > 0 {
		limiter = newLimiterPool(cfg.AIRequestsPerMin)
	}

	return &implUseCase{
		l:          l,
		llm:        llm,
		repo:       repo,
		store:      st,
		grace:      grace,
		location:   loc,
		aiLimiter:  limiter,
		parseCache: expirable.NewLRU[string, gemini.TaskAction](parseCacheSize, nil, parseCacheTTL),
		pending:    make(map[string]*pendingDeletion),
	}
}
