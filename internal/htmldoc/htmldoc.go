// Package htmldoc adapts golang.org/x/net/html trees to section.Node sequences.
package htmldoc

import (
	"strings"

	"github.com/dgallion1/specdoc/internal/section"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node wraps an *html.Node as a section.Node.
type Node struct {
	*html.Node
}

// Wrap returns n as a section.Node.
func Wrap(n *html.Node) *Node {
	return &Node{Node: n}
}

func (n *Node) Heading() bool {
	return headingLevel(n.Node) > 0
}

func (n *Node) Rank() int {
	return headingLevel(n.Node)
}

func (n *Node) Text() string {
	return TextContent(n.Node)
}

// ID returns the element's id attribute, or "" when it has none.
func (n *Node) ID() string {
	for _, a := range n.Attr {
		if a.Key == "id" {
			return a.Val
		}
	}
	return ""
}

// PrefixText prepends s to the first text node below the element. A heading
// without any text gets a new text node as its first child.
func (n *Node) PrefixText(s string) {
	if t := firstText(n.Node); t != nil {
		t.Data = s + t.Data
		return
	}
	n.InsertBefore(&html.Node{Type: html.TextNode, Data: s}, n.FirstChild)
}

// IsHeading reports whether n is an h1..h6 element.
func IsHeading(n *html.Node) bool {
	return headingLevel(n) > 0
}

func headingLevel(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// TextContent returns the concatenated text below n.
func TextContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return buf.String()
}

func firstText(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			return c
		}
		if t := firstText(c); t != nil {
			return t
		}
	}
	return nil
}

// FindHeadingParent returns the parent of the first heading element below
// root in document order, or nil if there is no heading.
func FindHeadingParent(root *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if IsHeading(c) {
				found = n
				return true
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return found
}

// Siblings returns the children of parent split at the first heading. seq
// starts with that heading; preamble holds whatever comes before it.
func Siblings(parent *html.Node) (preamble, seq []section.Node) {
	inSections := false
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		if IsHeading(c) {
			inSections = true
		}
		if inSections {
			seq = append(seq, Wrap(c))
		} else {
			preamble = append(preamble, Wrap(c))
		}
	}
	return preamble, seq
}

// Nodes unwraps a sequence back to html nodes. Nodes that did not come from
// this package are skipped.
func Nodes(seq []section.Node) []*html.Node {
	out := make([]*html.Node, 0, len(seq))
	for _, n := range seq {
		if hn, ok := n.(*Node); ok {
			out = append(out, hn.Node)
		}
	}
	return out
}

// ReplaceChildren detaches every child of parent and appends nodes in order.
func ReplaceChildren(parent *html.Node, nodes []*html.Node) {
	for c := parent.FirstChild; c != nil; {
		next := c.NextSibling
		parent.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
		parent.AppendChild(n)
	}
}
