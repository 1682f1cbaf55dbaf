package router

import (
	"context"

	"pixel-recruiter/pkg/groq"
	"pixel-recruiter/pkg/log"
)

// Router converts a free-text question into a retrieval Decision.
// Route never fails: every failure mode degrades to FallbackDecision.
type Router interface {
	Route(ctx context.Context, question string) Decision
}

// LLMRouter classifies questions with a remote completion call.
type LLMRouter struct {
	llm groq.IGroq
	l   log.Logger
}

var _ Router = (*LLMRouter)(nil)

// New creates a new LLMRouter.
func New(llm groq.IGroq, l log.Logger) *LLMRouter {
	return &LLMRouter{
		llm: llm,
		l:   l,
	}
}
