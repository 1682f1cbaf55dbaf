package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"pixel-recruiter/internal/model"
	"pixel-recruiter/pkg/groq"
	"pixel-recruiter/pkg/log"
	pkgQdrant "pixel-recruiter/pkg/qdrant"
	"pixel-recruiter/pkg/voyage"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Chat domain collaborators
	postgresDB       *sql.DB
	llm              groq.IGroq
	qdrantClient     *pkgQdrant.Client
	embedder         voyage.IVoyage
	qdrantCollection string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment model.Environment

	PostgresDB       *sql.DB
	LLM              groq.IGroq
	QdrantClient     *pkgQdrant.Client
	Embedder         voyage.IVoyage
	QdrantCollection string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		postgresDB:       cfg.PostgresDB,
		llm:              cfg.LLM,
		qdrantClient:     cfg.QdrantClient,
		embedder:         cfg.Embedder,
		qdrantCollection: cfg.QdrantCollection,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.llm == nil {
		return errors.New("llm client is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrant client is required")
	}
	if srv.embedder == nil {
		return errors.New("embedder is required")
	}
	return nil
}
