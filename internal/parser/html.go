package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/specdoc/internal/htmldoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLParser handles HTML files.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := fromHTML(root)
	doc.Title = stem(filename)
	if title := findTitle(root); title != "" {
		doc.Title = title
	}
	return doc, nil
}

// fromHTML isolates the heading siblings of an already parsed tree.
func fromHTML(root *html.Node) *Document {
	doc := &Document{Root: root}
	doc.Parent = htmldoc.FindHeadingParent(root)
	if doc.Parent != nil {
		doc.Preamble, doc.Nodes = htmldoc.Siblings(doc.Parent)
	}
	return doc
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		return strings.TrimSpace(htmldoc.TextContent(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}
