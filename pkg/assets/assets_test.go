package assets

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirOpen(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "logo.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewDir(root)
	rc, contentType, err := src.Open(context.Background(), "logo.svg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, _ := io.ReadAll(rc)
	if string(data) != "<svg/>" {
		t.Errorf("content = %q, want %q", data, "<svg/>")
	}
	if !strings.Contains(contentType, "svg") {
		t.Errorf("content type = %q, want svg", contentType)
	}
}

func TestDirOpenMissing(t *testing.T) {
	src := NewDir(t.TempDir())

	_, _, err := src.Open(context.Background(), "missing.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDirOpenRejectsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	src := NewDir(root)
	if _, _, err := src.Open(context.Background(), "sub"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSanitize(t *testing.T) {
	valid := map[string]string{
		"logo.png":        "logo.png",
		"/logo.png":       "logo.png",
		"theme/auth.css":  "theme/auth.css",
		"/theme/auth.css": "theme/auth.css",
	}
	for name, want := range valid {
		got, ok := sanitize(name)
		if !ok || got != want {
			t.Errorf("sanitize(%q) = %q, %v, want %q, true", name, got, ok, want)
		}
	}

	invalid := []string{
		"",
		"/",
		"../etc/passwd",
		"theme/../../etc/passwd",
		"//etc/passwd",
		"theme\\auth.css",
		".",
		"a/./b",
		"logo.png\x00.txt",
	}
	for _, name := range invalid {
		if got, ok := sanitize(name); ok {
			t.Errorf("sanitize(%q) = %q, true, want rejection", name, got)
		}
	}
}
