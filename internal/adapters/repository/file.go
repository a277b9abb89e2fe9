package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/l-sayginsoy/drk-display/internal/domain/entities"
	"github.com/l-sayginsoy/drk-display/internal/ports"
)

// FileContentRepository persists the content document as one JSON file at a
// fixed path, the server-side analog of the original single-key browser
// storage.
type FileContentRepository struct {
	path string
}

// NewFileContentRepository creates a new file-backed content repository
func NewFileContentRepository(path string) ports.ContentRepository {
	return &FileContentRepository{path: path}
}

func (r *FileContentRepository) Load(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read content document: %w", err)
	}
	return raw, nil
}

// Save writes the document atomically: a temp file in the same directory is
// renamed over the target, so readers never observe a partial write.
func (r *FileContentRepository) Save(_ context.Context, raw []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "content-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write content document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace content document: %w", err)
	}

	return nil
}
