// Package doctree holds the JSON-safe outline of a sectioned document.
package doctree

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dgallion1/specdoc/internal/section"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DocTree is the root of a document outline.
type DocTree struct {
	Title    string     `json:"title"`              // Document title (from metadata or filename)
	Children []*DocNode `json:"sections"`           // Top-level sections
	Warnings []string   `json:"warnings,omitempty"` // Headings skipped while numbering
}

// DocNode is a recursive section in the outline.
type DocNode struct {
	Title    string     `json:"title"`              // Heading text, including any number prefix
	Rank     int        `json:"rank"`               // Heading rank 1..6
	Anchor   string     `json:"anchor"`             // Heading id, or a slug of the heading text
	Children []*DocNode `json:"children,omitempty"` // Subsections
}

// FromForest converts a section forest into an outline.
func FromForest(title string, forest []*section.SectionNode) *DocTree {
	tree := &DocTree{Title: title}
	for _, n := range forest {
		tree.Children = append(tree.Children, fromSection(n))
	}
	return tree
}

// identified is implemented by headings that already carry an anchor id,
// such as rendered HTML headings.
type identified interface {
	ID() string
}

func fromSection(n *section.SectionNode) *DocNode {
	title := strings.TrimSpace(n.Title())
	node := &DocNode{
		Title:  title,
		Rank:   n.Rank(),
		Anchor: anchor(n.Heading, title),
	}
	for _, c := range n.Children {
		node.Children = append(node.Children, fromSection(c))
	}
	return node
}

// anchor prefers the heading's own id so outline links resolve in the rendered
// document. Headings without one get a slug of their title.
func anchor(h section.Node, title string) string {
	if id, ok := h.(identified); ok {
		if v := id.ID(); v != "" {
			return v
		}
	}
	return Slugify(title)
}

// Flatten walks the outline in pre-order and calls fn with each node and its
// breadcrumb of ancestor titles.
func (t *DocTree) Flatten(fn func(n *DocNode, breadcrumb []string)) {
	var walk func(n *DocNode, bc []string)
	walk = func(n *DocNode, bc []string) {
		fn(n, bc)
		next := append(bc[:len(bc):len(bc)], n.Title)
		for _, c := range n.Children {
			walk(c, next)
		}
	}
	for _, c := range t.Children {
		walk(c, nil)
	}
}

// Count returns the number of sections in the outline.
func (t *DocTree) Count() int {
	n := 0
	t.Flatten(func(*DocNode, []string) { n++ })
	return n
}

var (
	nonSlug  = regexp.MustCompile(`[^a-z0-9-]`)
	dashRuns = regexp.MustCompile(`-+`)
)

// Slugify converts a string to a URL/path-safe slug. Accents are folded so
// "Café" and "Cafe" share an anchor.
func Slugify(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, s); err == nil {
		s = folded
	}
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlug.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
