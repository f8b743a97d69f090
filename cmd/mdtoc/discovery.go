package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdtoc/internal/config"
	"github.com/alnah/go-mdtoc/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileJob represents a single document to process. An empty InputPath means
// stdin.
type FileJob struct {
	InputPath  string
	OutputPath string
}

// Source returns a display name for the job's input.
func (f FileJob) Source() string {
	if f.InputPath == "" {
		return "<stdin>"
	}
	return f.InputPath
}

// discoverFiles expands the positional arguments into jobs. Explicit file
// arguments must carry a Markdown extension; directories are walked and
// filtered to *.md and *.markdown.
func discoverFiles(args []string) ([]FileJob, error) {
	var files []FileJob
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadDocument, err)
		}

		if !info.IsDir() {
			if !fileutil.IsMarkdownFile(arg) {
				return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(arg))
			}
			files = append(files, FileJob{InputPath: arg, OutputPath: arg})
			continue
		}

		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !fileutil.IsMarkdownFile(path) {
				return nil
			}
			files = append(files, FileJob{InputPath: path, OutputPath: path})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
