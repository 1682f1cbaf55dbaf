package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "pixel-recruiter/internal/chat/delivery/http"
	"pixel-recruiter/internal/chat/intent"
	"pixel-recruiter/internal/chat/router"
	chatUC "pixel-recruiter/internal/chat/usecase"
	postgreRepo "pixel-recruiter/internal/job/repository/postgre"
	qdrantRepo "pixel-recruiter/internal/job/repository/qdrant"
)

// setupChatDomain initializes the chat domain and registers its routes.
//
// Pattern:
//  1. Create Repositories: job store + vector search
//  2. Create UseCase:      matcher + router + synthesis pipeline
//  3. Create HTTP Handler
//  4. Register Routes
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repositories
	jobRepo := postgreRepo.New(srv.postgresDB, srv.l)
	vectorRepo := qdrantRepo.New(srv.qdrantClient, srv.embedder, srv.qdrantCollection, srv.l)

	// 2. UseCase
	matcher := intent.NewDefault()
	rt := router.New(srv.llm, srv.l)
	uc := chatUC.New(srv.l, matcher, rt, srv.llm, jobRepo, vectorRepo)

	// 3. HTTP Handler
	h := chatHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/chat
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}
