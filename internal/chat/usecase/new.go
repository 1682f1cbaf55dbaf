package usecase

import (
	"pixel-recruiter/internal/chat/intent"
	"pixel-recruiter/internal/chat/router"
	"pixel-recruiter/internal/job/repository"
	"pixel-recruiter/pkg/groq"
	pkgLog "pixel-recruiter/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	matcher    *intent.Matcher
	router     router.Router
	llm        groq.IGroq
	repo       repository.JobRepository
	vectorRepo repository.VectorRepository
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	matcher *intent.Matcher,
	rt router.Router,
	llm groq.IGroq,
	repo repository.JobRepository,
	vectorRepo repository.VectorRepository,
) *implUseCase {
	return &implUseCase{
		l:          l,
		matcher:    matcher,
		router:     rt,
		llm:        llm,
		repo:       repo,
		vectorRepo: vectorRepo,
	}
}
