package mdtoc

import "iter"

// Headers is a forward-only sequence of Header values in document order. It
// owns the slug disambiguation state for one scan, so anchors for duplicate
// titles number themselves as the sequence is consumed. Once drained it
// cannot be rewound; call Scan again to reprocess a document.
type Headers struct {
	pending []heading
	slugs   slugTable
}

// Scan extracts every heading from a Markdown document and returns the
// resulting sequence. Title normalization and anchor assignment happen
// lazily, one Header per Next call.
func Scan(source string) *Headers {
	return &Headers{
		pending: scanHeadings([]byte(source)),
		slugs:   make(slugTable),
	}
}

// Next returns the next Header in document order. The second return value is
// false once the sequence is exhausted.
func (hs *Headers) Next() (Header, bool) {
	if len(hs.pending) == 0 {
		return Header{}, false
	}
	h := hs.pending[0]
	hs.pending = hs.pending[1:]

	return Header{
		level:  h.level,
		title:  titleize(h.raw),
		anchor: hs.slugs.unique(slugify(h.raw)),
	}, true
}

// All exposes the remaining Headers as a range-over-func iterator. The
// sequence stays single-pass: ranging consumes it.
func (hs *Headers) All() iter.Seq[Header] {
	return func(yield func(Header) bool) {
		for h, ok := hs.Next(); ok; h, ok = hs.Next() {
			if !yield(h) {
				return
			}
		}
	}
}
