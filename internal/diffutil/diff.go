// Package diffutil renders line-oriented diffs between a document and its
// regenerated form, for check-mode reporting.
package diffutil

import (
	"fmt"
	"io"
	"strings"
)

// DefaultContext is the number of unchanged lines shown around a hunk.
const DefaultContext = 3

// Kind classifies one line of a hunk.
type Kind int

const (
	// Context is an unchanged line surrounding a difference.
	Context Kind = iota
	// Current is a line present in the document but absent from the
	// expected output.
	Current
	// Expected is a line the regenerated output has and the document lacks.
	Expected
)

// Line is one rendered diff line.
type Line struct {
	Kind Kind
	Text string
}

// Mismatch is a group of differing lines with surrounding context.
type Mismatch struct {
	// Line is the 1-based number, in the current document, of the first
	// line in the hunk.
	Line  int
	Lines []Line
}

// Compare diffs the current document against the expected output and returns
// the mismatching hunks, each padded with up to context unchanged lines.
// Identical inputs return nil.
func Compare(current, expected string, context int) []Mismatch {
	if context < 0 {
		context = DefaultContext
	}

	var (
		hunks []Mismatch
		cur   *Mismatch
		queue []string
		since = context + 1
		line  = 1
	)

	open := func() {
		if cur != nil {
			return
		}
		cur = &Mismatch{Line: line - len(queue)}
		for _, text := range queue {
			cur.Lines = append(cur.Lines, Line{Kind: Context, Text: text})
		}
		queue = queue[:0]
	}

	for _, e := range diffLines(splitLines(current), splitLines(expected)) {
		switch e.kind {
		case editKeep:
			line++
			if cur != nil && since < context {
				cur.Lines = append(cur.Lines, Line{Kind: Context, Text: e.text})
				since++
				continue
			}
			if cur != nil {
				hunks = append(hunks, *cur)
				cur = nil
			}
			if context > 0 {
				if len(queue) == context {
					queue = queue[1:]
				}
				queue = append(queue, e.text)
			}

		case editDelete:
			open()
			cur.Lines = append(cur.Lines, Line{Kind: Current, Text: e.text})
			since = 0
			line++

		case editInsert:
			open()
			cur.Lines = append(cur.Lines, Line{Kind: Expected, Text: e.text})
			since = 0
		}
	}
	if cur != nil {
		hunks = append(hunks, *cur)
	}
	return hunks
}

// Write renders hunks to w, one header per hunk and a one-character prefix
// per line: space for context, "-" for the current document, "+" for the
// expected output.
func Write(w io.Writer, source string, hunks []Mismatch) error {
	for _, h := range hunks {
		if _, err := fmt.Fprintf(w, "Diff in %s at line %d:\n", source, h.Line); err != nil {
			return err
		}
		for _, l := range h.Lines {
			prefix := " "
			switch l.Kind {
			case Current:
				prefix = "-"
			case Expected:
				prefix = "+"
			}
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, l.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

type editKind int

const (
	editKeep editKind = iota
	editDelete
	editInsert
)

type edit struct {
	kind editKind
	text string
}

// diffLines computes an edit script turning a into b, built on a longest
// common subsequence table. Inputs here are whole documents split into
// lines, so the quadratic table stays small.
func diffLines(a, b []string) []edit {
	n, m := len(a), len(b)

	// lcs[i][j] is the LCS length of a[i:] and b[j:].
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	edits := make([]edit, 0, n+m)
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			edits = append(edits, edit{editKeep, a[i]})
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			edits = append(edits, edit{editDelete, a[i]})
			i++
		default:
			edits = append(edits, edit{editInsert, b[j]})
			j++
		}
	}
	for ; i < n; i++ {
		edits = append(edits, edit{editDelete, a[i]})
	}
	for ; j < m; j++ {
		edits = append(edits, edit{editInsert, b[j]})
	}
	return edits
}

// splitLines splits a document into lines without a phantom trailing entry
// for the final newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
