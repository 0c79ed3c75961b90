// Package upload persists request files into a single local directory that
// the router serves verbatim under /uploads. Names are
// <epoch-ms>-<sanitized original name>; there is no deduplication and no
// content validation.
package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

type Storage struct {
	dir string
}

func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Dir() string { return s.dir }

// URL returns the public path a stored file is served under.
func (s *Storage) URL(name string) string {
	return "/uploads/" + name
}

// Save writes src to disk under a timestamped name and returns that name.
// The file is fully written before Save returns; the caller's response waits
// on it.
func (s *Storage) Save(src io.Reader, originalName string) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), Sanitize(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}
	return name, nil
}

// SaveHeader stores one multipart file part.
func (s *Storage) SaveHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	return s.Save(f, fh.Filename)
}

var whitespace = regexp.MustCompile(`\s+`)

// Sanitize strips any path component and collapses whitespace runs to "_",
// matching the original uploader's naming.
func Sanitize(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "file"
	}
	return whitespace.ReplaceAllString(base, "_")
}
