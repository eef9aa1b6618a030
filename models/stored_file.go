package models

// StoredFile is the metadata kept for one uploaded file. The record is
// keyed by its storage path (uploads/videos/... or uploads/documents/...);
// the bytes themselves live on disk under that same path.
type StoredFile struct {
	Name         string `json:"name"`         // original file name
	Type         string `json:"type"`         // MIME type
	Size         int64  `json:"size"`         // bytes
	LastModified int64  `json:"lastModified"` // unix milliseconds
	URL          string `json:"url"`          // serve path for the stored bytes
}
