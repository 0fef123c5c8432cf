package http

import (
	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Register and Login are public; the rest require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", mw.Auth(), h.Logout)
		authGroup.GET("/me", mw.Auth(), h.Me)
	}
}
