package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/model"
	"mobile-todo-backend/pkg/response"
)

// SessionHeader carries the session secret on authenticated requests.
const SessionHeader = "X-Session-Token"

// Auth resolves the session secret into the caller's account and stores
// the resulting scope on the request context. Requests without a valid
// session are rejected with 401.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := sessionSecret(c)
		if secret == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := m.authUC.Me(c.Request.Context(), model.Scope{Session: secret})
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware: session rejected: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		SetScope(c, model.Scope{
			UserID:  user.ID,
			Email:   user.Email,
			Session: secret,
		})
		c.Next()
	}
}

// sessionSecret reads the session from X-Session-Token, falling back to
// a bearer token in Authorization.
func sessionSecret(c *gin.Context) string {
	if secret := c.GetHeader(SessionHeader); secret != "" {
		return secret
	}
	authz := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
