// Package section splits a flat sequence of document nodes into heading-rooted
// groups, filters and nests those groups by heading rank, and numbers headings.
//
// Nothing in this package parses or renders markup. Callers hand it the sibling
// list that contains the headings and get back groups, a section forest or a
// numbered sequence.
package section

// MaxRank is the deepest heading rank.
const MaxRank = 6

// Node is one entry of a sibling sequence.
type Node interface {
	// Heading reports whether the node is a heading.
	Heading() bool
	// Rank returns the heading rank in 1..MaxRank, or 0 when the node is not a
	// heading or the rank cannot be resolved.
	Rank() int
	// Text returns the rendered text of the node.
	Text() string
	// PrefixText prepends s to the visible text of the node.
	PrefixText(s string)
}

// Block is a plain Node for sources that have no richer tree of their own.
type Block struct {
	IsHeading bool
	Level     int // heading rank; out of range levels yield Rank() == 0
	// Label is the heading text, and for content blocks the plain text
	// of the content (a DOCX paragraph, for example). Numbering only
	// touches heading labels.
	Label string
	Raw   any // caller-owned content the block stands for
}

// NewHeading returns a heading block of the given rank.
func NewHeading(rank int, text string) *Block {
	return &Block{IsHeading: true, Level: rank, Label: text}
}

// NewContent returns a non-heading block carrying raw.
func NewContent(raw any) *Block {
	return &Block{Raw: raw}
}

// Heading reports IsHeading.
func (b *Block) Heading() bool { return b.IsHeading }

// Rank returns Level for headings with a valid level and 0 otherwise.
func (b *Block) Rank() int {
	if !b.IsHeading || !validRank(b.Level) {
		return 0
	}
	return b.Level
}

// Text returns Label.
func (b *Block) Text() string { return b.Label }

// PrefixText prepends s to Label.
func (b *Block) PrefixText(s string) { b.Label = s + b.Label }

func validRank(r int) bool {
	return r >= 1 && r <= MaxRank
}
