package chat

import "pixel-recruiter/internal/model"

// MaxQuestionLength bounds inbound questions. Longer input is rejected
// before any pipeline stage runs.
const MaxQuestionLength = 1000

// AskInput carries one user question through the pipeline.
type AskInput struct {
	Question string
}

// AskOutput is the terminal chat payload: the answer text, any UI action
// descriptors, and the wall-clock processing time in seconds.
type AskOutput struct {
	Answer   string
	Actions  []model.Action
	Duration float64
}
