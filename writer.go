package mdtoc

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Default sentinel marker lines delimiting the table-of-contents region in a
// document.
const (
	DefaultStartMarker = "<!-- toc -->"
	DefaultStopMarker  = "<!-- tocstop -->"
)

// Service generates tables of contents and injects them into Markdown
// documents. It holds configuration only; every call runs an independent
// scan, so one Service is safe for concurrent use across goroutines.
type Service struct {
	startMarker  string
	stopMarker   string
	style        Style
	indentWidth  int
	includeTitle bool
}

// Option configures a Service.
type Option func(*Service)

// WithStartMarker overrides the line that opens the table-of-contents region.
// Marker lines match exactly, after stripping the line terminator.
func WithStartMarker(marker string) Option {
	return func(s *Service) { s.startMarker = marker }
}

// WithStopMarker overrides the line that closes the table-of-contents region.
func WithStopMarker(marker string) Option {
	return func(s *Service) { s.stopMarker = marker }
}

// WithStyle selects the list style for generated entries.
func WithStyle(style Style) Option {
	return func(s *Service) { s.style = style }
}

// WithIndentWidth sets the number of spaces per nesting level.
// Panics if width is less than 1; a non-positive width is a programming
// error, not a runtime condition.
func WithIndentWidth(width int) Option {
	if width < 1 {
		panic(fmt.Sprintf("mdtoc: indent width must be at least 1, got %d", width))
	}
	return func(s *Service) { s.indentWidth = width }
}

// WithTitleEntry keeps level-1 headings in the table of contents. By default
// the document title is omitted and the remaining headings are promoted one
// level so the list starts flush left.
func WithTitleEntry() Option {
	return func(s *Service) { s.includeTitle = true }
}

// New builds a Service with GitHub-flavored defaults: "<!-- toc -->" and
// "<!-- tocstop -->" markers, alternating bullets, two-space indents, and the
// document title omitted.
func New(opts ...Option) *Service {
	s := &Service{
		startMarker: DefaultStartMarker,
		stopMarker:  DefaultStopMarker,
		style:       AlternatingBullets(),
		indentWidth: DefaultIndentWidth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// entries yields the headers that belong in the table of contents. The
// underlying scan always covers the whole document, so anchors stay aligned
// with what GitHub renders even for headings the list itself omits.
func (s *Service) entries(source string) iter.Seq[Header] {
	all := Scan(source).All()
	if s.includeTitle {
		return all
	}
	return func(yield func(Header) bool) {
		for h := range all {
			if h.Level() == MinLevel {
				continue
			}
			if !yield(h.Promote()) {
				return
			}
		}
	}
}

func (s *Service) formatter() Formatter {
	return Formatter{Style: s.style, IndentWidth: s.indentWidth}
}

// TOC renders just the table-of-contents block for a document, one list line
// per entry. A document without eligible headings yields an empty string.
func (s *Service) TOC(source string) (string, error) {
	var b strings.Builder
	if err := s.formatter().Format(&b, s.entries(source)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeState tracks position relative to the marker region while copying a
// document.
type writeState int

const (
	beforeMarker writeState = iota
	insideMarkers
	afterMarker
)

// Write copies source to w with a freshly generated table of contents in the
// marker region. Text before the start marker and after the stop marker is
// copied verbatim; stale content between the markers is discarded. When the
// stop marker is missing, the block is inserted right after the start marker
// and a stop marker is synthesized so reruns are idempotent. A document
// without the start marker returns ErrMissingMarker before any write.
func (s *Service) Write(w io.Writer, source string) error {
	if !hasMarkerLine(source, s.startMarker) {
		return fmt.Errorf("%w: %q", ErrMissingMarker, s.startMarker)
	}

	state := beforeMarker
	for rest := source; rest != ""; {
		line, tail := nextLine(rest)
		rest = tail

		switch state {
		case beforeMarker:
			if err := writeString(w, line); err != nil {
				return err
			}
			if !markerEquals(line, s.startMarker) {
				continue
			}
			if !strings.HasSuffix(line, "\n") {
				// Start marker was the last, unterminated line.
				if err := writeString(w, "\n"); err != nil {
					return err
				}
			}
			if err := s.writeBlock(w, source); err != nil {
				return err
			}
			if hasMarkerLine(tail, s.stopMarker) {
				state = insideMarkers
			} else {
				if err := writeString(w, s.stopMarker+"\n"); err != nil {
					return err
				}
				state = afterMarker
			}

		case insideMarkers:
			if markerEquals(line, s.stopMarker) {
				if err := writeString(w, line); err != nil {
					return err
				}
				state = afterMarker
			}

		case afterMarker:
			if err := writeString(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeBlock writes the padded table-of-contents block: a blank line, the
// rendered list, a closing blank line. The scan runs over the full original
// source, never the partially written output.
func (s *Service) writeBlock(w io.Writer, source string) error {
	if err := writeString(w, "\n"); err != nil {
		return err
	}
	if err := s.formatter().Format(w, s.entries(source)); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// nextLine splits off the first line of s, keeping its terminator.
func nextLine(s string) (line, rest string) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i+1], s[i+1:]
	}
	return s, ""
}

// markerEquals reports whether a raw line, terminator included, is exactly
// the marker. Indented or decorated marker lines do not match.
func markerEquals(line, marker string) bool {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line == marker
}

// hasMarkerLine reports whether any line of s is exactly the marker.
func hasMarkerLine(s, marker string) bool {
	for rest := s; rest != ""; {
		var line string
		line, rest = nextLine(rest)
		if markerEquals(line, marker) {
			return true
		}
	}
	return false
}

func writeString(w io.Writer, s string) error {
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
