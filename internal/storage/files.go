package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// FileStore writes uploaded reel files into a local directory. The directory
// is served read-only under the /uploads/reels/ URL prefix.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed and returns a FileStore.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// SanitizeName strips any path components from an uploaded filename and
// collapses runs of whitespace into a single underscore.
func SanitizeName(name string) string {
	name = filepath.Base(name)
	name = whitespaceRun.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "upload"
	}
	return name
}

// Save writes src to a new file named {epochMillis}-{sanitized original name}
// and returns the generated filename. The timestamp prefix is the sole
// collision-avoidance strategy; two uploads with the same original name in
// the same millisecond collide. A client disconnect mid-copy leaves a
// partial file behind.
func (s *FileStore) Save(src io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), SanitizeName(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return name, nil
}
