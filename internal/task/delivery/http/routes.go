package http

import (
	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All task routes require an authenticated session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), h.Create)
		tasks.PATCH("/:id/completion", mw.Auth(), h.ToggleCompletion)
		tasks.DELETE("/:id", mw.Auth(), h.Delete)
		tasks.POST("/:id/undo", mw.Auth(), h.Undo)
	}
	rg.DELETE("/toast", mw.Auth(), h.DismissToast)
}
