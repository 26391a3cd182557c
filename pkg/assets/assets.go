// Package assets serves branding files (logos, custom stylesheets)
// referenced by the auth pages, from a local directory or an S3 bucket.
package assets

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a source has no asset under the given name.
var ErrNotFound = errors.New("assets: not found")

// Source provides named, read-only assets.
type Source interface {
	// Open returns the asset contents and its content type. The content
	// type may be empty when the source cannot determine it.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
}

// Dir serves assets from a local directory.
type Dir struct {
	root string
}

// NewDir creates a directory-backed source.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open returns the named file. Names that try to escape the root
// (traversal, absolute paths, NUL bytes) are rejected as not found.
func (d *Dir) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	rel, ok := sanitize(name)
	if !ok {
		return nil, "", ErrNotFound
	}

	f, err := os.Open(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrNotFound
		}
		return nil, "", err
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, "", ErrNotFound
	}

	return f, mime.TypeByExtension(path.Ext(rel)), nil
}

// sanitize returns a safe slash-separated relative path for an asset name.
// It rejects traversal and absolute-path tricks so serving cannot escape
// the configured directory.
func sanitize(name string) (string, bool) {
	rel := strings.TrimPrefix(name, "/")
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path
	// attempt (e.g. "//etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal attempts are not
	// silently rewritten into different requests.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}
