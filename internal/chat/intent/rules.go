package intent

import "pixel-recruiter/internal/model"

// DefaultRules is the static intent table, iterated in declaration order:
// the first rule whose keyword matches wins, so ordering is a tie-break
// policy and must be preserved.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: "greeting",
			Keywords: []string{
				"hello", "helloo", "hi", "hii", "hey", "heey", "greetings", "sup",
				"welcome", "good morning", "good evening", "yo", "hola",
			},
			FuzzyThreshold: 1,
			Response:       "**Hello!** 👋 I am your AI Recruiter.\n\nTry asking:\n- *\"High paying Laravel jobs\"*\n- *\"Remote React roles\"*",
		},
		{
			Name: "small_talk",
			Keywords: []string{
				"how are you", "how r u", "how you doing", "what up", "whats up",
				"how is it going", "doing good",
			},
			FuzzyThreshold: 1,
			Response:       "I'm doing great, thanks for asking! 🤖 Ready to help you find your next job.",
		},
		{
			Name: "gratitude",
			Keywords: []string{
				"thanks", "thank", "thx", "cool", "awesome", "great", "ok", "okay",
				"perfect", "nice", "appreciated", "cheers",
			},
			FuzzyThreshold: 1,
			Response:       "You're very welcome! 🚀 Let me know if you need anything else.",
		},
		{
			Name: "identity",
			Keywords: []string{
				"who are you", "what are you", "your name", "are you a bot", "are you human",
				"real person", "who made you", "developer", "pixel ai",
			},
			FuzzyThreshold: 1,
			Response:       "I am **Pixel AI**, a smart recruiting agent here to help with your job search.",
		},
		{
			Name: "help",
			Keywords: []string{
				"help", "support", "guide", "stuck", "error", "broken",
				"what can you do", "features", "how to use",
			},
			FuzzyThreshold: 1,
			Response:       "Here is what I can do:\n🔹 **Salary Search** (e.g. \"Highest paying PHP jobs\")\n🔹 **Tech Stack Search** (e.g. \"Vue.js remote roles\")\n🔹 **Recent Jobs** (e.g. \"Newest postings\")",
			Actions: []model.Action{
				{Type: "suggestion", Label: "Highest paying PHP jobs", Value: "Highest paying PHP jobs"},
				{Type: "suggestion", Label: "Newest postings", Value: "Newest postings"},
			},
		},
		{
			Name:           "farewell",
			Keywords:       []string{"bye", "goodbye", "see ya", "cya", "exit", "quit", "later"},
			FuzzyThreshold: 1,
			Response:       "Good luck with your job search! 👋 Come back soon.",
		},
	}
}
