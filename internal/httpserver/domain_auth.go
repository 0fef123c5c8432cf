package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"mobile-todo-backend/internal/auth"
	authHTTP "mobile-todo-backend/internal/auth/delivery/http"
	authRepo "mobile-todo-backend/internal/auth/repository/appwrite"
	authUsecase "mobile-todo-backend/internal/auth/usecase"
	"mobile-todo-backend/internal/middleware"
)

// newAuthUseCase builds the auth usecase. It is created before the other
// domains because the session middleware depends on it.
func (srv *HTTPServer) newAuthUseCase() auth.UseCase {
	repo := authRepo.New(srv.appwriteClient, srv.l)
	return authUsecase.New(srv.l, repo)
}

// setupAuthDomain registers the auth routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.appwriteClient, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, uc auth.UseCase) {
	h := authHTTP.New(srv.l, uc)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
}
