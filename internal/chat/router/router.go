package router

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"

	"pixel-recruiter/pkg/groq"
)

// braceSpan grabs the first opening brace through the last closing brace,
// across lines, so a JSON object survives being wrapped in prose.
var braceSpan = regexp.MustCompile(`(?s)\{.*\}`)

// Route asks the model which retrieval tool to run. The reply is untrusted:
// a missing object, unparseable JSON, or a failed call all degrade to a
// usable decision instead of an error.
func (r *LLMRouter) Route(ctx context.Context, question string) Decision {
	resp, err := r.llm.CreateChatCompletion(ctx, &groq.Request{
		Messages: []groq.Message{
			{Role: "system", Content: PromptRouterSystem},
			{Role: "user", Content: question},
		},
		Temperature: RouterTemperature,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: completion call failed, using fallback decision: %v", LogPrefixRoute, err)
		return FallbackDecision()
	}

	content := ""
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}

	decision := ParseDecision(content)
	r.l.Infof(ctx, "%s: tool=%s sort=%s limit=%d term=%q", LogPrefixRoute,
		decision.Tool, decision.Sort, decision.Limit, decision.SearchTerm)
	return decision
}

// ExtractJSONSpan locates a candidate brace-delimited object in a
// prose-wrapped reply. Pure text scan; no validation.
func ExtractJSONSpan(s string) (string, bool) {
	span := braceSpan.FindString(s)
	if span == "" {
		return "", false
	}
	return span, true
}

// ParseDecision turns a raw model reply into a normalized Decision. A reply
// with no parseable object yields the all-defaults decision (semantic
// search, limit 5) — distinct from the call-failure fallback.
func ParseDecision(content string) Decision {
	var raw rawDecision
	if span, ok := ExtractJSONSpan(content); ok {
		// Malformed JSON leaves raw at its zero value, which normalizes to
		// the default decision.
		_ = json.Unmarshal([]byte(span), &raw)
	}

	return Decision{
		Tool:       Tool(raw.Tool),
		Sort:       Sort(raw.Sort),
		Limit:      coerceInt(raw.Limit),
		SearchTerm: raw.SearchTerm,
	}.Normalize()
}

// coerceInt reads the loosely-typed limit field. Absent or unreadable
// values return 0, which Normalize replaces with the default.
func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return i
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	default:
		return 0
	}
}
