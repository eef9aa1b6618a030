package models

import "time"

// QuizQuestion holds one question with 2 to 6 answer options.
// CorrectOption is a zero-based index into Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctOption"`
}

// Quiz is an ordered set of questions scoped to one class level.
// Immutable once created except for deletion; deleting a quiz also
// deletes every attempt that references it.
type Quiz struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	ClassLevel  ClassLevel     `json:"classLevel"`
	Questions   []QuizQuestion `json:"questions"`
	CreatedAt   time.Time      `json:"createdAt"`
	CreatedBy   string         `json:"createdBy"`
}
