package chat

import "errors"

var (
	// ErrEmptyQuestion is returned when the question is missing or blank.
	ErrEmptyQuestion = errors.New("question is required")

	// ErrQuestionTooLong is returned when the question exceeds MaxQuestionLength.
	ErrQuestionTooLong = errors.New("question exceeds maximum length")

	// ErrRetrievalFailed is returned when the job store or vector search is
	// unavailable. Unlike LLM failures this is fatal for the request:
	// answering from fabricated data would be worse than failing.
	ErrRetrievalFailed = errors.New("job retrieval failed")
)
