package usecase

import (
	"mobile-todo-backend/internal/auth"
	"mobile-todo-backend/internal/auth/repository"
	pkgLog "mobile-todo-backend/pkg/log"
)

// minPasswordLength matches the Appwrite account password policy.
const minPasswordLength = 8

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.AccountRepository
}

// New creates a new auth UseCase instance.
func New(l pkgLog.Logger, repo repository.AccountRepository) auth.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
