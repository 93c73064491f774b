package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo("testdir/../prog.turtle")
	if err != nil {
		t.Fatalf("GetPathInfo: %v", err)
	}
	if !filepath.IsAbs(full) {
		t.Errorf("expected absolute path, got %q", full)
	}
	if filepath.Base(full) != "prog.turtle" {
		t.Errorf("expected base prog.turtle, got %q", filepath.Base(full))
	}
	if filepath.Dir(full) != dir {
		t.Errorf("parent dir %q does not contain %q", dir, full)
	}
}

func TestReadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.turtle")
	if err := os.WriteFile(path, []byte("move 10;\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	src, full, err := ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource: %v", err)
	}
	if src != "move 10;\n" {
		t.Errorf("unexpected source %q", src)
	}
	if full != path {
		t.Errorf("expected %q, got %q", path, full)
	}

	if _, _, err := ReadSource(filepath.Join(t.TempDir(), "missing.turtle")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct{ in, ext, want string }{
		{"star.turtle", ".png", "star.png"},
		{"dir/star", ".png", "dir/star.png"},
		{"a.b/c.tl", ".json", "a.b/c.json"},
	}
	for _, tc := range tests {
		if got := DefaultOutputPath(tc.in, tc.ext); got != tc.want {
			t.Errorf("DefaultOutputPath(%q, %q) = %q; want %q", tc.in, tc.ext, got, tc.want)
		}
	}
}
