package domain

import "fmt"

// Summary aggregates a fetched entry set.
type Summary struct {
	Count        int
	TotalSeconds int64
}

// Summarize computes the count and total duration of entries.
func Summarize(entries []TimeEntry) Summary {
	s := Summary{Count: len(entries)}
	for _, e := range entries {
		s.TotalSeconds += e.DurationSeconds
	}
	return s
}

// Hours returns the total duration in hours.
func (s Summary) Hours() float64 {
	return float64(s.TotalSeconds) / 3600
}

// String renders the total as "15.25 hours (54900 seconds)".
func (s Summary) String() string {
	return fmt.Sprintf("%.2f hours (%d seconds)", s.Hours(), s.TotalSeconds)
}
