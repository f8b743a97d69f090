package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-mdtoc/internal/config"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Argument expansion
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	t.Run("explicit markdown files", func(t *testing.T) {
		t.Parallel()

		a := writeDoc(t, "a.md", "# A\n")
		b := writeDoc(t, "b.markdown", "# B\n")

		files, err := discoverFiles([]string{a, b})
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("len(files) = %d, want 2", len(files))
		}
		if files[0].InputPath != a || files[0].OutputPath != a {
			t.Errorf("files[0] = %+v, want input and output %q", files[0], a)
		}
	})

	t.Run("explicit file with wrong extension", func(t *testing.T) {
		t.Parallel()

		path := writeDoc(t, "notes.txt", "# A\n")
		_, err := discoverFiles([]string{path})
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("discoverFiles() error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles([]string{"no/such/file.md"})
		if !errors.Is(err, ErrReadDocument) {
			t.Errorf("discoverFiles() error = %v, want ErrReadDocument", err)
		}
	})

	t.Run("directory walk filters by extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sub := filepath.Join(dir, "docs")
		if err := os.Mkdir(sub, 0o755); err != nil {
			t.Fatalf("setup: %v", err)
		}
		for _, name := range []string{"top.md", "docs/nested.MD", "docs/readme.markdown", "docs/image.png"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatalf("setup: %v", err)
			}
		}

		files, err := discoverFiles([]string{dir})
		if err != nil {
			t.Fatalf("discoverFiles() error = %v", err)
		}

		got := make(map[string]bool, len(files))
		for _, f := range files {
			got[filepath.Base(f.InputPath)] = true
		}
		for _, want := range []string{"top.md", "nested.MD", "readme.markdown"} {
			if !got[want] {
				t.Errorf("walk missed %s (got %v)", want, got)
			}
		}
		if got["image.png"] {
			t.Error("walk picked up a non-markdown file")
		}
	})
}

func TestFileJobSource(t *testing.T) {
	t.Parallel()

	if got := (FileJob{}).Source(); got != "<stdin>" {
		t.Errorf("Source() = %q, want <stdin>", got)
	}
	if got := (FileJob{InputPath: "a.md"}).Source(); got != "a.md" {
		t.Errorf("Source() = %q, want a.md", got)
	}
}

// ---------------------------------------------------------------------------
// TestValidateWorkers - Bounds
// ---------------------------------------------------------------------------

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	if err := validateWorkers(0); err != nil {
		t.Errorf("validateWorkers(0) = %v, want nil (auto)", err)
	}
	if err := validateWorkers(config.MaxWorkers); err != nil {
		t.Errorf("validateWorkers(max) = %v, want nil", err)
	}
	if err := validateWorkers(-1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(-1) = %v, want ErrInvalidWorkerCount", err)
	}
	if err := validateWorkers(config.MaxWorkers + 1); !errors.Is(err, ErrInvalidWorkerCount) {
		t.Errorf("validateWorkers(max+1) = %v, want ErrInvalidWorkerCount", err)
	}
}
