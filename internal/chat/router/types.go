package router

// Tool selects one of the three retrieval strategies.
type Tool string

const (
	ToolSalaryQuery   Tool = "salary_query"
	ToolRecencyQuery  Tool = "recency_query"
	ToolSemanticQuery Tool = "semantic_query"
)

// Sort is the ordering direction for sorted lookups.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

// Decision is the structured routing decision. Every field has a default,
// so a partially-present or fully-absent remote decision is still valid
// after Normalize.
type Decision struct {
	Tool       Tool
	Sort       Sort
	Limit      int
	SearchTerm string // empty = no title filter
}

// Normalize fills defaults and clamps out-of-range fields. It is
// idempotent: normalizing an already-normalized decision is a no-op.
func (d Decision) Normalize() Decision {
	switch d.Tool {
	case ToolSalaryQuery, ToolRecencyQuery, ToolSemanticQuery:
	default:
		d.Tool = ToolSemanticQuery
	}

	if d.Sort != SortAsc && d.Sort != SortDesc {
		d.Sort = SortDesc
	}

	if d.Limit == 0 {
		d.Limit = DefaultLimit
	}
	if d.Limit < MinLimit {
		d.Limit = MinLimit
	}
	if d.Limit > MaxLimit {
		d.Limit = MaxLimit
	}

	return d
}

// FallbackDecision is the fixed decision used when the routing call fails:
// a broad semantic search with no title filter.
func FallbackDecision() Decision {
	return Decision{
		Tool:  ToolSemanticQuery,
		Sort:  SortDesc,
		Limit: FallbackLimit,
	}
}

// rawDecision mirrors the untrusted JSON object the model emits. Limit is
// decoded loosely because models occasionally return it as a string or
// float.
type rawDecision struct {
	Tool       string `json:"tool"`
	Sort       string `json:"sort"`
	Limit      any    `json:"limit"`
	SearchTerm string `json:"search_term"`
}
