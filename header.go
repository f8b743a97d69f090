package mdtoc

import "fmt"

// Heading level bounds for ATX and setext headings.
const (
	MinLevel = 1
	MaxLevel = 6
)

// Header is one heading occurrence extracted from a Markdown document. It
// carries the heading level, the normalized display title, and the anchor
// slug GitHub derives for in-page links.
//
// Headers are plain values. Level transforms return a modified copy and never
// touch the anchor, which is fixed at scan time so links keep pointing at
// what GitHub actually renders.
type Header struct {
	level  int
	title  string
	anchor string
}

// Level returns the heading level, between MinLevel and MaxLevel.
func (h Header) Level() int { return h.level }

// Title returns the normalized display title.
func (h Header) Title() string { return h.title }

// Anchor returns the anchor slug, without the leading "#".
func (h Header) Anchor() string { return h.anchor }

// Promote returns a copy one level closer to the top. A MinLevel Header is
// returned unchanged.
func (h Header) Promote() Header {
	if h.level > MinLevel {
		h.level--
	}
	return h
}

// Demote returns a copy one level deeper. A MaxLevel Header is returned
// unchanged.
func (h Header) Demote() Header {
	if h.level < MaxLevel {
		h.level++
	}
	return h
}

// String renders the Header as a Markdown link to its anchor.
func (h Header) String() string {
	return fmt.Sprintf("[%s](#%s)", h.title, h.anchor)
}
