package fileutil_test

// Notes:
// - The Chmod and Rename error branches in WriteFileAtomic are not tested
//   because triggering them portably requires platform-specific setups.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/alnah/go-mdtoc/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestFileExists - Path existence checks
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.md")
	if err := os.WriteFile(file, []byte("# T\n"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory is not a file", dir, false},
		{"missing path", filepath.Join(dir, "missing.md"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"bare name", "github", false},
		{"hyphenated name", "my-config", false},
		{"relative path", "./mdtoc.yaml", true},
		{"parent path", "../shared/mdtoc.yaml", true},
		{"absolute path", "/etc/mdtoc.yaml", true},
		{"windows path", `C:\configs\mdtoc.yaml`, true},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsMarkdownFile - Extension filtering
// ---------------------------------------------------------------------------

func TestIsMarkdownFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"md extension", "README.md", true},
		{"markdown extension", "notes.markdown", true},
		{"uppercase extension", "README.MD", true},
		{"text file", "notes.txt", false},
		{"no extension", "README", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsMarkdownFile(tt.path); got != tt.want {
				t.Errorf("IsMarkdownFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Temp-and-rename writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.md")
		if err := fileutil.WriteFileAtomic(path, []byte("# New\n"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(got) != "# New\n" {
			t.Errorf("content = %q, want %q", got, "# New\n")
		}
	})

	t.Run("replaces existing file and keeps its permissions", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" {
			t.Skip("unix permissions")
		}

		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatalf("setup: %v", err)
		}

		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading result: %v", err)
		}
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
		}
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("reading dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("missing directory fails", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "doc.md")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
			t.Error("WriteFileAtomic() error = nil, want error for missing directory")
		}
	})
}
