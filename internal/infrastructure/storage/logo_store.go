// Package storage holds the filesystem adapter behind the logo upload.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cindychcheng/paintpro-manager-sub001/internal/application/usecase"
)

var _ usecase.LogoStore = (*DiskLogoStore)(nil)

// DiskLogoStore writes uploaded logos under a local directory that the HTTP
// layer serves statically. URLs are baseURL + "/" + filename.
type DiskLogoStore struct {
	dir     string
	baseURL string
}

// NewDiskLogoStore creates the upload directory if needed.
func NewDiskLogoStore(dir, baseURL string) (*DiskLogoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskLogoStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save streams the file to disk under the given name. The write goes to a
// temp file first so a failed upload never leaves a half-written logo at a
// servable path.
func (s *DiskLogoStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	filename = filepath.Base(filename) // no path traversal via upload names

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write logo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close logo: %w", err)
	}

	dst := filepath.Join(s.dir, filename)
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("move logo into place: %w", err)
	}
	return s.baseURL + "/" + filename, nil
}
