package mdtoc

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// heading is a raw heading occurrence before title normalization and slug
// assignment.
type heading struct {
	level int
	raw   string
}

// scanHeadings parses src as CommonMark and returns every heading in document
// order. Detection is delegated to the parser rather than ad-hoc line rules:
// headings inside fenced code blocks never reach the AST, an unterminated
// fence swallows the rest of the document, and lines such as "#hashtag" or
// runs of seven or more "#" are not headings. Setext headings map to levels 1
// and 2, and closing "#" sequences are stripped from ATX titles.
func scanHeadings(src []byte) []heading {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var found []heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			found = append(found, heading{level: h.Level, raw: headingText(h, src)})
		}
		return ast.WalkContinue, nil
	})
	return found
}

// headingText recovers the verbatim source text of a heading, joining the
// lines of a multi-line setext title with single spaces.
func headingText(h *ast.Heading, src []byte) string {
	lines := h.Lines()
	if lines.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		seg := lines.At(i)
		b.WriteString(strings.TrimRight(string(seg.Value(src)), "\r\n"))
	}
	return strings.TrimSpace(b.String())
}
