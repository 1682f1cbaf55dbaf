package qdrant

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"pixel-recruiter/internal/job/repository"
	"pixel-recruiter/internal/model"
	pkgLog "pixel-recruiter/pkg/log"
	pkgQdrant "pixel-recruiter/pkg/qdrant"
	"pixel-recruiter/pkg/voyage"
)

const (
	// embeddingCacheSize bounds the query-embedding cache. Conversational
	// questions repeat often enough that skipping an embedding call for a
	// repeated question is worth a small amount of memory.
	embeddingCacheSize = 512

	// maxEmbeddingChars caps the text sent to the embedding API.
	maxEmbeddingChars = 1000
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	queryCache     *lru.Cache[string, []float32]
	l              pkgLog.Logger
}

// New creates a new Qdrant-backed VectorRepository for job postings.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, l pkgLog.Logger) repository.VectorRepository {
	cache, _ := lru.New[string, []float32](embeddingCacheSize)
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		queryCache:     cache,
		l:              l,
	}
}

// EmbedJob generates an embedding for a job posting and upserts it.
func (r *implRepository) EmbedJob(ctx context.Context, job model.Job) error {
	vectors, err := r.embedder.Embed(ctx, []string{BuildEmbeddingText(job)})
	if err != nil || len(vectors) == 0 {
		r.l.Errorf(ctx, "qdrant repository: failed to generate embedding: %v", err)
		return fmt.Errorf("failed to generate embedding: %w", err)
	}

	point := pkgQdrant.Point{
		// Qdrant point IDs must be UUIDs or uint64; a deterministic UUID
		// derived from the job id makes re-indexing idempotent.
		ID:     jobIDToUUID(job.ID),
		Vector: vectors[0],
		Payload: map[string]interface{}{
			"job_id":  job.ID,
			"title":   job.Title,
			"company": job.CompanyName,
			"tags":    job.TagNames,
		},
	}

	req := pkgQdrant.UpsertPointsRequest{Points: []pkgQdrant.Point{point}}
	if err := r.client.UpsertPoints(ctx, r.collectionName, req); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert point: %v", err)
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	r.l.Infof(ctx, "qdrant repository: embedded job %d", job.ID)
	return nil
}

// SearchJobs embeds the raw question and returns ranked candidate job ids.
func (r *implRepository) SearchJobs(ctx context.Context, query string, limit int) ([]repository.SearchResult, error) {
	queryVector, err := r.queryEmbedding(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       limit,
		WithPayload: true, // job_id lives in the payload
	})
	if err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to search: %v", err)
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]repository.SearchResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		jobID, ok := payloadJobID(scored.Payload)
		if !ok {
			r.l.Errorf(ctx, "qdrant repository: job_id missing or malformed in payload for point %v", scored.ID)
			continue
		}
		results = append(results, repository.SearchResult{
			JobID: jobID,
			Score: scored.Score,
		})
	}

	r.l.Infof(ctx, "qdrant repository: found %d results for query %q", len(results), query)
	return results, nil
}

// queryEmbedding returns a cached embedding for repeated questions or asks
// the embedding API for a fresh one.
func (r *implRepository) queryEmbedding(ctx context.Context, query string) ([]float32, error) {
	key := strings.ToLower(strings.TrimSpace(query))
	if vec, ok := r.queryCache.Get(key); ok {
		return vec, nil
	}

	vectors, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vectors")
	}

	r.queryCache.Add(key, vectors[0])
	return vectors[0], nil
}

// payloadJobID extracts the original job id from a point payload. JSON
// numbers decode as float64; string ids are tolerated too.
func payloadJobID(payload map[string]interface{}) (int64, bool) {
	raw, exists := payload["job_id"]
	if !exists {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	default:
		return 0, false
	}
}

// jobIDToUUID derives a deterministic point UUID from a job id.
func jobIDToUUID(jobID int64) string {
	namespace := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	return uuid.NewSHA1(namespace, []byte(strconv.FormatInt(jobID, 10))).String()
}

// BuildEmbeddingText constructs the text embedded for a job posting:
// title, company, tags, then as much description as fits. Exported for the
// index script.
func BuildEmbeddingText(job model.Job) string {
	parts := []string{job.Title, job.CompanyName, job.Location}
	if len(job.TagNames) > 0 {
		parts = append(parts, strings.Join(job.TagNames, " "))
	}
	if job.Description != "" {
		parts = append(parts, job.Description)
	}

	text := strings.Join(parts, "\n")
	runes := []rune(text)
	if len(runes) > maxEmbeddingChars {
		text = string(runes[:maxEmbeddingChars])
	}
	return text
}
