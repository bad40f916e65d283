package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmissionPreservesMetadata(t *testing.T) {
	e := TimeEntry{
		ID:              "src-123",
		Title:           "Extra Hard Spanish",
		Description:     "episode 4",
		DurationSeconds: 1800,
		Type:            "watching",
		Date:            "2025-06-01",
		URL:             "https://example.com/video",
	}

	sub := NewSubmission(e)
	assert.Equal(t, e.Title, sub.Title)
	assert.Equal(t, e.Description, sub.Description)
	assert.Equal(t, e.DurationSeconds, sub.DurationSeconds)
	assert.Equal(t, e.Type, sub.Type)
	assert.Equal(t, e.Date, sub.Date)
	assert.Equal(t, e.URL, sub.URL)

	require.NotEmpty(t, sub.IdempotencyKey)
	assert.NotEqual(t, e.ID, sub.IdempotencyKey)
}

func TestNewSubmissionKeysAreUnique(t *testing.T) {
	e := TimeEntry{ID: "same-source", DurationSeconds: 60}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		key := NewSubmission(e).IdempotencyKey
		require.False(t, seen[key], "duplicate idempotency key %q", key)
		seen[key] = true
	}
}

func TestLanguage(t *testing.T) {
	assert.True(t, LanguageSpanish.Valid())
	assert.True(t, LanguageFrench.Valid())
	assert.False(t, Language("de").Valid())
	assert.False(t, Language("").Valid())

	assert.Equal(t, "Spanish", LanguageSpanish.Name())
	assert.Equal(t, "French", LanguageFrench.Name())
	assert.Equal(t, "de", Language("de").Name())
}
