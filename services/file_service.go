package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"eduboard/kvstore"
	"eduboard/models"
)

const storedFilesKey = "storedFiles"

var whitespace = regexp.MustCompile(`\s+`)

// storageDirs maps a content type to its virtual directory under the
// upload root.
var storageDirs = map[models.ContentType]string{
	models.ContentVideo: "uploads/videos",
	models.ContentPDF:   "uploads/documents",
}

// FileService bridges an uploaded file and the path used by content
// records. Bytes are written to disk under the upload root; the metadata
// map is persisted through the store under a single key.
type FileService struct {
	kv      kvstore.Store
	baseDir string

	mu sync.Mutex // serializes read-modify-write of the metadata map
}

func NewFileService(kv kvstore.Store, baseDir string) (*FileService, error) {
	for _, dir := range storageDirs {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &FileService{kv: kv, baseDir: baseDir}, nil
}

// SaveFile stores the file bytes under a unique timestamp-based path and
// records its metadata. Returns the storage path.
func (s *FileService) SaveFile(r io.Reader, contentType models.ContentType, fileName, mimeType string) (string, error) {
	dir, ok := storageDirs[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}

	normalized := strings.ToLower(whitespace.ReplaceAllString(filepath.Base(fileName), "-"))
	path := fmt.Sprintf("%s/%d-%s", dir, time.Now().UnixMilli(), normalized)

	dst, err := os.Create(filepath.Join(s.baseDir, filepath.FromSlash(path)))
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	size, err := io.Copy(dst, r)
	if err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.loadFiles()
	if err != nil {
		return "", err
	}
	files[path] = models.StoredFile{
		Name:         fileName,
		Type:         mimeType,
		Size:         size,
		LastModified: time.Now().UnixMilli(),
		URL:          "/files/" + path,
	}
	if err := s.saveFiles(files); err != nil {
		return "", err
	}

	log.Printf("File stored at: %s", path)
	return path, nil
}

// GetFile looks up metadata by exact path. Absent paths return nil.
func (s *FileService) GetFile(path string) *models.StoredFile {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.loadFiles()
	if err != nil {
		log.Printf("Failed to load file metadata: %v", err)
		return nil
	}
	file, ok := files[path]
	if !ok {
		log.Printf("File not found: %s", path)
		return nil
	}
	return &file
}

// DeleteFile removes the stored bytes and the metadata entry. Reports
// whether an entry existed; deleting twice is safe.
func (s *FileService) DeleteFile(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.loadFiles()
	if err != nil {
		log.Printf("Failed to load file metadata: %v", err)
		return false
	}
	if _, ok := files[path]; !ok {
		return false
	}

	if err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(path))); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove stored file %s: %v", path, err)
	}

	delete(files, path)
	if err := s.saveFiles(files); err != nil {
		log.Printf("Failed to persist file metadata: %v", err)
	}
	return true
}

// DiskPath resolves a storage path to its location on disk. The second
// return is false when no such file is recorded.
func (s *FileService) DiskPath(path string) (string, bool) {
	if s.GetFile(path) == nil {
		return "", false
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(path)), true
}

func (s *FileService) loadFiles() (map[string]models.StoredFile, error) {
	data, err := s.kv.Get(context.Background(), storedFilesKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return map[string]models.StoredFile{}, nil
	}
	if err != nil {
		return nil, err
	}
	files := map[string]models.StoredFile{}
	if err := json.Unmarshal([]byte(data), &files); err != nil {
		return nil, fmt.Errorf("corrupt file metadata: %w", err)
	}
	return files, nil
}

func (s *FileService) saveFiles(files map[string]models.StoredFile) error {
	data, err := json.Marshal(files)
	if err != nil {
		return err
	}
	return s.kv.Set(context.Background(), storedFilesKey, string(data))
}
