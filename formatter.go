package mdtoc

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// DefaultIndentWidth is the number of spaces per nesting level.
const DefaultIndentWidth = 2

// Formatter renders a sequence of Headers as an indented Markdown list. It is
// a pure function of its inputs; no state survives a Format call, so a single
// Formatter may be reused freely.
type Formatter struct {
	Style       Style
	IndentWidth int
}

// Format writes one list line per Header to w. Nesting depth is relative to
// the first header's level, so documents whose headings start below level 1
// are not over-indented; a later header above the first level clamps to depth
// zero. An empty sequence writes nothing. Write errors abort immediately and
// are returned wrapped.
func (f Formatter) Format(w io.Writer, headers iter.Seq[Header]) error {
	width := f.IndentWidth
	if width < 1 {
		width = DefaultIndentWidth
	}

	base := 0
	for h := range headers {
		if base == 0 {
			base = h.Level()
		}
		depth := h.Level() - base
		if depth < 0 {
			depth = 0
		}

		indent := strings.Repeat(" ", depth*width)
		if _, err := fmt.Fprintf(w, "%s%s %s\n", indent, f.Style.bulletFor(depth), h); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	return nil
}
