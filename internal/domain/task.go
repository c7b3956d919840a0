// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Task is a single entry of the to-do list.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created time.Time // Creation time
	ID      string    // Stable opaque identifier, assigned once at creation
	Text    string    // Trimmed, never empty
	Done    bool      // Strikethrough flag; affects rendering only
}

// NormalizeText trims surrounding whitespace from user input.
// No other normalization is applied.
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// ValidateText returns the normalized text, or ErrEmptyText when nothing
// remains after trimming.
func ValidateText(raw string) (string, error) {
	text := NormalizeText(raw)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// CheckLength returns ErrTextTooLong when text has more than limit runes.
// A limit of zero or less means no limit.
func CheckLength(text string, limit int) error {
	if limit > 0 && utf8.RuneCountInString(text) > limit {
		return fmt.Errorf("%w: %d characters max", ErrTextTooLong, limit)
	}
	return nil
}

// Clone returns a copy of the task that callers may modify freely.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// TaskSummary holds counts for the list header.
type TaskSummary struct {
	Total int
	Done  int
}

// Open returns the number of tasks not yet marked done.
func (s TaskSummary) Open() int {
	return s.Total - s.Done
}

// NewTaskSummary counts tasks by done state.
func NewTaskSummary(tasks []*Task) TaskSummary {
	s := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Done {
			s.Done++
		}
	}
	return s
}
