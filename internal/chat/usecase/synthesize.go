package usecase

import (
	"context"
	"fmt"

	"pixel-recruiter/pkg/groq"
)

// synthesize produces the final answer from the retrieved context and the
// original question. It never fails past this boundary: any upstream error
// becomes a literal explanatory answer, because a degraded textual reply
// beats a hard failure on a conversational surface.
func (uc *implUseCase) synthesize(ctx context.Context, question, contextText string) string {
	userContent := fmt.Sprintf("JOB DATA:\n%s\n\nUSER QUESTION:\n%s", contextText, question)

	resp, err := uc.llm.CreateChatCompletion(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: PromptSynthesizerSystem},
			{Role: "user", Content: userContent},
		},
		Temperature: SynthesizerTemperature,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: completion call failed: %v", LogPrefixSynthesize, err)
		return fmt.Sprintf("Connection Error: %s", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		uc.l.Warnf(ctx, "%s: completion returned no content", LogPrefixSynthesize)
		return AnswerOnEmptyCompletion
	}

	return resp.Choices[0].Message.Content
}
