package intent

import "pixel-recruiter/internal/model"

// Rule is one conversational intent: an ordered keyword list, a fuzzy
// tolerance, and the canned response that handles it locally. Rules are
// immutable after construction.
type Rule struct {
	Name           string
	Keywords       []string // single words or space-separated phrases
	FuzzyThreshold int      // max edit distance for single-word keywords; 0 disables fuzzy
	Response       string
	Actions        []model.Action
}

// Match is a successful local intent hit.
type Match struct {
	Rule    string
	Answer  string
	Actions []model.Action
}
