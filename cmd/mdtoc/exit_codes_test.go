package main

// Notes:
// - exitCodeFor: we test all sentinel errors from mdtoc and config packages,
//   plus wrapped errors to verify the errors.Is() chain works correctly.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and custom codes are below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	mdtoc "github.com/alnah/go-mdtoc"
	"github.com/alnah/go-mdtoc/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Check-mode staleness (exit 4)
		{"toc outdated", ErrTOCOutdated, ExitOutdated},
		{"wrapped toc outdated", fmt.Errorf("%w: 3 file(s)", ErrTOCOutdated), ExitOutdated},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read document", ErrReadDocument, ExitIO},
		{"write document", ErrWriteDocument, ExitIO},
		{"library write output", mdtoc.ErrWriteOutput, ExitIO},
		{"wrapped file not exist", fmt.Errorf("reading: %w", os.ErrNotExist), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"mode conflict", ErrModeConflict, ExitUsage},
		{"single input", ErrSingleInput, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// General errors (exit 1)
		{"missing marker is a document problem", mdtoc.ErrMissingMarker, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodesFollowUnixConventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	for _, code := range []int{ExitIO, ExitOutdated} {
		if code <= 2 || code >= 126 {
			t.Errorf("custom exit code %d outside (2, 126)", code)
		}
	}
}
