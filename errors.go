package mdtoc

import "errors"

// Sentinel errors for library operations. Callers test them with errors.Is;
// wrapped variants carry the failing detail.
var (
	// ErrMissingMarker reports that the start marker line is absent from a
	// document. Write returns it before producing any output.
	ErrMissingMarker = errors.New("start marker not found")

	// ErrWriteOutput reports a failure while streaming rendered output to
	// the destination writer.
	ErrWriteOutput = errors.New("failed to write output")
)
