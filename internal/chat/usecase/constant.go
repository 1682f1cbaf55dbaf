package usecase

// Log prefixes
const (
	LogPrefixAsk        = "internal.chat.usecase.Ask"
	LogPrefixSynthesize = "internal.chat.usecase.synthesize"
)

// PromptSynthesizerSystem constrains the final answer to the retrieved
// context: the model must not invent jobs and must say so when the context
// is empty or irrelevant.
const PromptSynthesizerSystem = `You are Pixel AI, an expert Career Coach.

RULES:
1. **Chatting:** If the user asks general questions (e.g., "How are you?", "What is this?"), be friendly, brief, and professional.
2. **Job Data:** If the user asks about jobs, answer using **ONLY** the "JOB DATA" provided below. Do not make up jobs.
3. **Empty Data:** If the provided job data is empty or does not answer the specific question, politely say you couldn't find any matching jobs.
4. **Format:** Use bullet points for job listings.`

const (
	// SynthesizerTemperature is non-zero: this call produces prose, and
	// some stylistic variance is acceptable.
	SynthesizerTemperature = 0.8

	// NoRelevantJobsMarker is the context block used when vector search
	// finds no candidates. Never an empty string: the synthesizer prompt
	// depends on this marker to produce an honest "not found" answer.
	NoRelevantJobsMarker = "No relevant jobs found in the database."

	// AnswerOnEmptyCompletion is returned when the completion succeeds but
	// carries no usable content.
	AnswerOnEmptyCompletion = "Sorry, Groq could not answer."

	// descriptionLimit caps the description text per job in the semantic
	// context block.
	descriptionLimit = 600
)
