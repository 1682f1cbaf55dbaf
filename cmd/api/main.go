package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"pixel-recruiter/config"
	_ "pixel-recruiter/docs" // Swagger docs
	"pixel-recruiter/internal/httpserver"
	"pixel-recruiter/internal/model"
	"pixel-recruiter/pkg/groq"
	"pixel-recruiter/pkg/log"
	pkgQdrant "pixel-recruiter/pkg/qdrant"
	"pixel-recruiter/pkg/voyage"
)

// @title       Pixel Recruiter API
// @description Conversational job-search assistant: local intent matching, LLM query routing, and retrieval-grounded answers.
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

	ctx := context.Background()

	logger.Info(ctx, "Starting Pixel Recruiter...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Job store (PostgreSQL)
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Warnf(ctx, "Job store not reachable yet: %v", err)
	}

	// 4. Completion client (Groq)
	llm, err := groq.New(groq.Config{
		APIKey:  cfg.Groq.APIKey,
		Model:   cfg.Groq.Model,
		BaseURL: cfg.Groq.BaseURL,
		Timeout: cfg.Groq.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Groq client: ", err)
		return
	}

	// 5. Vector search collaborators
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Voyage client: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      model.Environment(cfg.Environment.Name),
		PostgresDB:       db,
		LLM:              llm,
		QdrantClient:     qdrantClient,
		Embedder:         embedder,
		QdrantCollection: cfg.Qdrant.CollectionName,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
