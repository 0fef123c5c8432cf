package http

import (
	"time"

	"mobile-todo-backend/internal/auth"
	"mobile-todo-backend/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
	}
}

// ---

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

type sessionResp struct {
	Secret    string    `json:"secret"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authResp struct {
	User    userResp    `json:"user"`
	Session sessionResp `json:"session"`
}

func (h *handler) newAuthResp(out auth.Output) authResp {
	return authResp{
		User: newUserResp(out.User),
		Session: sessionResp{
			Secret:    out.Session.Secret,
			ExpiresAt: out.Session.ExpiresAt,
		},
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(u model.User) meResp {
	return meResp{User: newUserResp(u)}
}
