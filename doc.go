// Package mdtoc generates GitHub-compatible tables of contents for Markdown
// (CommonMark) documents.
//
// # Quick Start
//
// Create a Service and inject a table of contents between the marker lines
// of a document:
//
//	svc := mdtoc.New()
//
//	var buf bytes.Buffer
//	if err := svc.Write(&buf, source); err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("README.md", buf.Bytes(), 0o644)
//
// The document must contain a line that is exactly "<!-- toc -->"; content up
// to a matching "<!-- tocstop -->" line is replaced by the generated list,
// and the stop marker is synthesized when absent. Running Write on its own
// output is a no-op, so the command can sit in CI or a pre-commit hook.
//
// # Pipeline
//
// Generation follows three stages:
//
//  1. Scan parses the document (Goldmark) and yields Headers lazily, pairing
//     each heading with the anchor slug GitHub derives for it. Duplicate
//     titles disambiguate with "-1", "-2", ... suffixes in document order.
//  2. A Formatter renders Headers as an indented Markdown list: alternating
//     bullets, ordered numbering, or a custom glyph.
//  3. The Service splices the rendered block into the marker region.
//
// # Configuration
//
// Use functional options to customize the Service:
//
//	svc := mdtoc.New(
//	    mdtoc.WithStyle(mdtoc.Numbers()),
//	    mdtoc.WithIndentWidth(4),
//	    mdtoc.WithStartMarker("<!-- contents -->"),
//	    mdtoc.WithTitleEntry(),
//	)
//
// By default the level-1 document title is omitted from the list and the
// remaining headings are promoted one level; WithTitleEntry keeps it.
//
// # Standalone Sequences
//
// Scan is usable on its own for callers that want the headings without the
// rendering:
//
//	for h := range mdtoc.Scan(source).All() {
//	    fmt.Printf("%d %s #%s\n", h.Level(), h.Title(), h.Anchor())
//	}
package mdtoc
