package groq

import "time"

const (
	// DefaultBaseURL is the default Groq OpenAI-compatible API endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the default model to use
	DefaultModel = "llama-3.3-70b-versatile"

	// DefaultTimeout bounds each completion call. Both pipeline calls sit on
	// the request's critical path, so a hung upstream must fail fast.
	DefaultTimeout = 10 * time.Second
)
