package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mobile-todo-backend/config"
	_ "mobile-todo-backend/docs" // Swagger docs
	"mobile-todo-backend/internal/httpserver"
	"mobile-todo-backend/internal/task/usecase"
	"mobile-todo-backend/pkg/appwrite"
	"mobile-todo-backend/pkg/gemini"
	"mobile-todo-backend/pkg/log"
)

// @title       Mobile To-Do API
// @description Backend for a mobile to-do app: Appwrite-backed tasks with AI-assisted creation and undoable deletion.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mobile To-Do Backend...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Appwrite endpoint: %s", cfg.Appwrite.Endpoint)

	// 3. Gateway clients
	appwriteClient := appwrite.NewClient(
		cfg.Appwrite.Endpoint,
		cfg.Appwrite.ProjectID,
		cfg.Appwrite.APIKey,
		cfg.Appwrite.DatabaseID,
		cfg.Appwrite.TableID,
	)

	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "Gemini model: %s", geminiClient.Model())

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AppwriteClient: appwriteClient,
		GeminiClient:   geminiClient,
		TaskConfig: usecase.Config{
			GraceWindow:      time.Duration(cfg.Task.GraceMs) * time.Millisecond,
			Timezone:         cfg.Task.Timezone,
			AIRequestsPerMin: cfg.Task.AIRequestsPerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
