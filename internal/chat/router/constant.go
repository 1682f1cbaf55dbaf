package router

// Log prefixes
const (
	LogPrefixRoute = "internal.chat.router.Route"
)

// PromptRouterSystem instructs the model to emit a single JSON decision
// object. Wording changes here are protocol changes: the parser depends on
// a brace-delimited object being present somewhere in the reply.
const PromptRouterSystem = `You are a database query router.
Return ONLY valid JSON. No markdown.

Tools:
1. "salary_query": questions about highest/lowest pay, salary sort.
2. "recency_query": questions about new, latest, recent jobs.
3. "semantic_query": everything else (complex skills, fuzzy descriptions).

Schema:
{
  "tool": "salary_query" | "recency_query" | "semantic_query",
  "sort": "asc" | "desc",
  "limit": 5,
  "search_term": null | "string"
}

INSTRUCTIONS:
- If user mentions a specific technology or title (e.g. "Laravel", "Manager", "Vue"), put it in "search_term".
- If no specific tech is mentioned, set "search_term": null.
- Extract "limit" if user asks for a number ("top 3"). Default 5.`

// Router configuration
const (
	// RouterTemperature is 0: the reply must be structurally stable JSON,
	// not prose.
	RouterTemperature = 0

	// DefaultLimit applies when the decision omits a limit.
	DefaultLimit = 5

	// FallbackLimit applies when the routing call itself fails and we fall
	// back to a broad semantic search.
	FallbackLimit = 15

	MinLimit = 1
	MaxLimit = 20
)
