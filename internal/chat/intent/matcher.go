package intent

import (
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	// minWordLen skips tiny tokens ("a", "of") that would collide with
	// short keywords.
	minWordLen = 2

	// minFuzzyLen is the minimum token length for edit-distance matching,
	// to keep e.g. "of" from fuzzy-matching "ok".
	minFuzzyLen = 4
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

// Matcher resolves conversational boilerplate against a static rule table
// without any network call. It is pure and safe for concurrent use.
type Matcher struct {
	rules []Rule
}

// New creates a Matcher over the given rules. Keywords are normalized to
// lower case once here instead of per request.
func New(rules []Rule) *Matcher {
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		nr := r
		nr.Keywords = make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			nr.Keywords[j] = strings.ToLower(kw)
		}
		normalized[i] = nr
	}
	return &Matcher{rules: normalized}
}

// NewDefault creates a Matcher over the built-in intent table.
func NewDefault() *Matcher {
	return New(DefaultRules())
}

// Match checks whether the question is handled by a local intent.
// The second return value is false when no rule matched, which signals
// fallthrough to remote routing — it is not an error.
func (m *Matcher) Match(question string) (Match, bool) {
	sentence := normalize(question)
	words := strings.Fields(sentence)

	for _, rule := range m.rules {
		for _, keyword := range rule.Keywords {
			// Phrase keywords ("how are you") match as a substring of the
			// whole sentence; single-word logic never applies to them since
			// a phrase can never appear as one token.
			if strings.Contains(keyword, " ") {
				if strings.Contains(sentence, keyword) {
					return hit(rule), true
				}
				continue
			}

			for _, word := range words {
				if len(word) < minWordLen {
					continue
				}

				if word == keyword {
					return hit(rule), true
				}

				if rule.FuzzyThreshold > 0 && len(word) >= minFuzzyLen {
					if levenshtein.ComputeDistance(word, keyword) <= rule.FuzzyThreshold {
						return hit(rule), true
					}
				}
			}
		}
	}

	return Match{}, false
}

func hit(rule Rule) Match {
	return Match{
		Rule:    rule.Name,
		Answer:  rule.Response,
		Actions: rule.Actions,
	}
}

// normalize lower-cases and strips everything outside [a-z0-9 ], keeping
// whitespace so tokenization stays valid.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSpace(nonAlnum.ReplaceAllString(s, ""))
}
