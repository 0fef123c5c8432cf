package middleware

import (
	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/model"
)

const scopeKey = "auth.scope"

// SetScope stores the caller's scope on the gin context.
func SetScope(c *gin.Context, sc model.Scope) {
	c.Set(scopeKey, sc)
}

// GetScope returns the caller's scope, or a zero scope if unauthenticated.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
