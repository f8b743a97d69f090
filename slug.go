package mdtoc

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Precompiled patterns shared by title and slug normalization.
var (
	// HTML tags are stripped from titles and slugs alike.
	htmlTagRE = regexp.MustCompile(`</?[^>]+>`)

	// Markdown links contribute their text; destinations are dropped.
	mdLinkRE = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
)

// titleize normalizes a raw heading title for display: HTML tags are removed
// and runs of whitespace collapse to single spaces. Inline Markdown markup
// stays, so emphasis and code spans still render in a table of contents.
func titleize(raw string) string {
	return strings.Join(strings.Fields(htmlTagRE.ReplaceAllString(raw, "")), " ")
}

// slugify derives the base anchor slug for a raw heading title the way GitHub
// does: lowercase, link destinations and HTML tags dropped, spaces mapped to
// hyphens, and every rune outside Unicode letters, digits, "_", and "-"
// removed. Consecutive hyphens are kept; GitHub does not collapse them.
func slugify(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = mdLinkRE.ReplaceAllString(s, "$1")
	s = htmlTagRE.ReplaceAllString(s, "")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

// slugTable counts how many times each base slug has been handed out during
// one scan, so repeated titles get "-1", "-2", ... suffixes in order of
// appearance.
type slugTable map[string]int

// unique returns base for its first occurrence and base-N for the following
// ones.
func (t slugTable) unique(base string) string {
	n := t[base]
	t[base] = n + 1
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
