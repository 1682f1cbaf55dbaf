package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"pixel-recruiter/config"
	"pixel-recruiter/internal/job/repository"
	postgreRepo "pixel-recruiter/internal/job/repository/postgre"
	qdrantRepo "pixel-recruiter/internal/job/repository/qdrant"
	"pixel-recruiter/pkg/log"
	pkgQdrant "pixel-recruiter/pkg/qdrant"
	"pixel-recruiter/pkg/voyage"
)

const batchLimit = 1000

// Embeds every job posting into the Qdrant collection so the semantic
// retrieval strategy has something to search. Safe to re-run: point IDs
// are deterministic, so re-indexing overwrites in place.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "debug",
		ColorEnabled: true,
	})

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open postgres connection: %v", err)
	}
	defer db.Close()

	jobRepo := postgreRepo.New(db, logger)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embedder, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage client: %v", err)
	}
	vectorRepo := qdrantRepo.New(qdrantClient, embedder, cfg.Qdrant.CollectionName, logger)

	// Idempotent collection setup; conflict means it already exists.
	if err := qdrantClient.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name: cfg.Qdrant.CollectionName,
		Vectors: pkgQdrant.VectorConfig{
			Size:     cfg.Qdrant.VectorSize,
			Distance: "Cosine",
		},
	}); err != nil {
		logger.Warnf(ctx, "CreateCollection: %v (already exists?)", err)
	}

	logger.Info(ctx, "Starting job index backfill...")

	jobs, err := jobRepo.ListByRecency(ctx, repository.ListByRecencyOptions{
		Limit: batchLimit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list jobs: %v", err)
	}

	logger.Infof(ctx, "Found %d jobs to index", len(jobs))

	successCount := 0
	for i, job := range jobs {
		if err := vectorRepo.EmbedJob(ctx, job); err != nil {
			logger.Errorf(ctx, "Failed to embed job %d: %v", job.ID, err)
			continue
		}
		logger.Infof(ctx, "Embedded job %d/%d: %s", i+1, len(jobs), job.Title)
		successCount++
	}

	logger.Infof(ctx, "Backfill complete! %d/%d jobs successfully embedded.", successCount, len(jobs))
}
