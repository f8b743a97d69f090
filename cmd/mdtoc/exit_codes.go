package main

import (
	"errors"
	"os"

	mdtoc "github.com/alnah/go-mdtoc"
	"github.com/alnah/go-mdtoc/internal/config"
)

// Exit codes for the mdtoc CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Document(s) processed, nothing stale
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitOutdated = 4 // --check found a stale table of contents
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check-mode staleness (exit 4)
	if errors.Is(err, ErrTOCOutdated) {
		return ExitOutdated
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadDocument) ||
		errors.Is(err, ErrWriteDocument) ||
		errors.Is(err, mdtoc.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	// A missing start marker is intentionally absent here: that is a
	// document problem, not a usage one, and maps to the general code.
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrModeConflict) ||
		errors.Is(err, ErrSingleInput) ||
		errors.Is(err, ErrInvalidFlags) {
		return ExitUsage
	}

	return ExitGeneral
}
