package model

import "time"

// Job is a read-only projection of a job posting, with the employer name
// and tag names already joined in. The chat core never mutates jobs.
type Job struct {
	ID          int64
	Title       string
	Location    string
	Salary      string // raw currency-formatted text, e.g. "45,000 EGP"
	CompanyName string
	TagNames    []string
	Description string
	CreatedAt   time.Time
}

// Action is an opaque UI action descriptor attached to a chat response,
// e.g. a quick-prompt suggestion chip rendered by the client.
type Action struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Value string `json:"value"`
}
