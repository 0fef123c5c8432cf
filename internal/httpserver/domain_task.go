package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/middleware"
	taskHTTP "mobile-todo-backend/internal/task/delivery/http"
	taskRepo "mobile-todo-backend/internal/task/repository/appwrite"
	"mobile-todo-backend/internal/task/store"
	taskUsecase "mobile-todo-backend/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	// 1. Repository
	repo := taskRepo.New(srv.appwriteClient, srv.l)

	// 2. UseCase with its in-memory store
	st := store.New()
	uc := taskUsecase.New(srv.l, srv.geminiClient, repo, st, srv.taskConfig)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks and /api/v1/toast
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered")
}
