package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"pixel-recruiter/internal/chat"
	"pixel-recruiter/internal/model"
)

// Ask runs the full pipeline for one question:
// local intent match → (on miss) route → retrieve → synthesize.
// A local hit short-circuits everything remote — zero network calls — which
// is the dominant low-latency path for conversational input.
func (uc *implUseCase) Ask(ctx context.Context, input chat.AskInput) (chat.AskOutput, error) {
	start := time.Now()

	question := strings.TrimSpace(input.Question)
	if question == "" {
		return chat.AskOutput{}, chat.ErrEmptyQuestion
	}
	if utf8.RuneCountInString(question) > chat.MaxQuestionLength {
		return chat.AskOutput{}, chat.ErrQuestionTooLong
	}

	if m, ok := uc.matcher.Match(question); ok {
		uc.l.Infof(ctx, "%s: local intent %q matched, skipping remote pipeline", LogPrefixAsk, m.Rule)
		return chat.AskOutput{
			Answer:   m.Answer,
			Actions:  actionsOrEmpty(m.Actions),
			Duration: round(time.Since(start).Seconds(), 4),
		}, nil
	}

	decision := uc.router.Route(ctx, question)

	contextText, err := uc.retrieve(ctx, decision, question)
	if err != nil {
		uc.l.Errorf(ctx, "%s: retrieval failed: %v", LogPrefixAsk, err)
		return chat.AskOutput{}, fmt.Errorf("%w: %v", chat.ErrRetrievalFailed, err)
	}

	answer := uc.synthesize(ctx, question, contextText)

	return chat.AskOutput{
		Answer:   answer,
		Actions:  []model.Action{},
		Duration: round(time.Since(start).Seconds(), 2),
	}, nil
}

func actionsOrEmpty(actions []model.Action) []model.Action {
	if actions == nil {
		return []model.Action{}
	}
	return actions
}

func round(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}
