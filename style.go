package mdtoc

// alternatingBullets are the glyphs AlternatingBullets cycles through by
// nesting depth.
var alternatingBullets = [...]string{"-", "*", "+"}

// Style selects how table-of-contents entries are marked. The set is closed:
// ordered numbering, depth-alternating bullets, or a single custom glyph.
// The zero value is AlternatingBullets.
type Style struct {
	kind  styleKind
	glyph string
}

type styleKind int

const (
	styleAlternating styleKind = iota
	styleNumbers
	styleCustom
)

// AlternatingBullets cycles "-", "*", "+" by nesting depth, repeating after
// three levels. This is the default style.
func AlternatingBullets() Style { return Style{kind: styleAlternating} }

// Numbers emits the literal marker "1." at every depth; Markdown renderers
// take care of the visual renumbering of ordered lists.
func Numbers() Style { return Style{kind: styleNumbers} }

// Custom repeats a single caller-supplied glyph at every depth.
func Custom(glyph string) Style { return Style{kind: styleCustom, glyph: glyph} }

// bulletFor returns the list marker for a zero-based nesting depth.
func (s Style) bulletFor(depth int) string {
	switch s.kind {
	case styleNumbers:
		return "1."
	case styleCustom:
		return s.glyph
	default:
		return alternatingBullets[depth%len(alternatingBullets)]
	}
}
