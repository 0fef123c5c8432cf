package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/auth"
	authHTTP "mobile-todo-backend/internal/auth/delivery/http"
	"mobile-todo-backend/internal/middleware"
	"mobile-todo-backend/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type stubAuthUC struct {
	registerOut auth.Output
	registerErr error
	loginOut    auth.Output
	loginErr    error
	logoutErr   error
	meUser      model.User
	meErr       error
}

func (s *stubAuthUC) Register(ctx context.Context, input auth.RegisterInput) (auth.Output, error) {
	return s.registerOut, s.registerErr
}
func (s *stubAuthUC) Login(ctx context.Context, input auth.LoginInput) (auth.Output, error) {
	return s.loginOut, s.loginErr
}
func (s *stubAuthUC) Logout(ctx context.Context, sc model.Scope) error { return s.logoutErr }
func (s *stubAuthUC) Me(ctx context.Context, sc model.Scope) (model.User, error) {
	return s.meUser, s.meErr
}

func newAuthRouter(uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(nopLogger{}, uc)
	r := gin.New()
	h := authHTTP.New(nopLogger{}, uc)
	authHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doReq(r *gin.Engine, method, path, body, session string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	uc := &stubAuthUC{
		registerOut: auth.Output{
			User:    model.User{ID: "user-1", Email: "a@example.com"},
			Session: model.Session{Secret: "secret-token"},
		},
	}
	r := newAuthRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"password123","name":"Alice"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "secret-token") {
		t.Error("expected session secret in response")
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	r := newAuthRouter(&stubAuthUC{})

	// Missing password fails binding.
	w := doReq(r, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestRegisterHandlerEmailTaken(t *testing.T) {
	r := newAuthRouter(&stubAuthUC{registerErr: auth.ErrEmailTaken})

	w := doReq(r, http.MethodPost, "/api/v1/auth/register", `{"email":"a@example.com","password":"password123"}`, "")
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginHandler(t *testing.T) {
	uc := &stubAuthUC{
		loginOut: auth.Output{
			User:    model.User{ID: "user-1", Email: "a@example.com"},
			Session: model.Session{Secret: "secret-token"},
		},
	}
	r := newAuthRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/auth/login", `{"email":"a@example.com","password":"password123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	r := newAuthRouter(&stubAuthUC{loginErr: auth.ErrInvalidCredentials})

	w := doReq(r, http.MethodPost, "/api/v1/auth/login", `{"email":"a@example.com","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLogoutHandler(t *testing.T) {
	uc := &stubAuthUC{meUser: model.User{ID: "user-1"}}
	r := newAuthRouter(uc)

	w := doReq(r, http.MethodPost, "/api/v1/auth/logout", "", "secret-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doReq(r, http.MethodPost, "/api/v1/auth/logout", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without session, got %d", w.Code)
	}
}

func TestMeHandler(t *testing.T) {
	uc := &stubAuthUC{meUser: model.User{ID: "user-1", Email: "a@example.com"}}
	r := newAuthRouter(uc)

	w := doReq(r, http.MethodGet, "/api/v1/auth/me", "", "secret-token")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "a@example.com") {
		t.Error("expected account email in response")
	}
}
