package models

import "time"

type ContentType string

const (
	ContentVideo ContentType = "video"
	ContentPDF   ContentType = "pdf"
)

func (t ContentType) Valid() bool {
	return t == ContentVideo || t == ContentPDF
}

// Content is a single lesson artifact. Immutable once created except
// for deletion.
type Content struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        ContentType `json:"type"`
	URL         string      `json:"url"` // external URL or a stored file path
	ClassLevel  ClassLevel  `json:"classLevel"`
	CreatedAt   time.Time   `json:"createdAt"`
	CreatedBy   string      `json:"createdBy"`
}
