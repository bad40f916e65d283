package domain

import "github.com/google/uuid"

// Language is a Dreaming language code.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
)

// Valid reports whether l is a language code the service accepts.
func (l Language) Valid() bool {
	return l == LanguageSpanish || l == LanguageFrench
}

// Name returns the human-readable language name, falling back to the code.
func (l Language) Name() string {
	switch l {
	case LanguageSpanish:
		return "Spanish"
	case LanguageFrench:
		return "French"
	}
	return string(l)
}

// TimeEntry represents one recorded unit of learning activity as fetched
// from a source account. The ID is assigned by the service and is never
// forwarded on submission.
type TimeEntry struct {
	ID              string
	Title           string
	Description     string
	DurationSeconds int64  // always positive
	Type            string // e.g. "watching", "listening"; passed through
	Date            string // calendar date, YYYY-MM-DD; the API owns the format
	URL             string
}

// Submission is the payload posted to a target account: the entry's
// metadata with the source ID stripped and a fresh idempotency key attached.
type Submission struct {
	Title           string
	Description     string
	DurationSeconds int64
	Type            string
	Date            string
	URL             string
	IdempotencyKey  string
}

// NewSubmission builds the target payload for e. Each call generates a new
// idempotency key so the target treats the submission as a novel record.
func NewSubmission(e TimeEntry) Submission {
	return Submission{
		Title:           e.Title,
		Description:     e.Description,
		DurationSeconds: e.DurationSeconds,
		Type:            e.Type,
		Date:            e.Date,
		URL:             e.URL,
		IdempotencyKey:  uuid.NewString(),
	}
}
