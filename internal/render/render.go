// Package render turns a parsed document into numbered, sectioned HTML.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgallion1/specdoc/internal/htmldoc"
	"github.com/dgallion1/specdoc/internal/parser"
	"github.com/dgallion1/specdoc/internal/section"
	"golang.org/x/net/html"
)

// ErrNoHTML is returned for documents that have no HTML form.
var ErrNoHTML = errors.New("document has no html form")

// DefaultDingusURL is the interactive CommonMark dingus.
const DefaultDingusURL = "https://spec.commonmark.org/dingus/"

// Options controls rendering.
type Options struct {
	Exclude   []section.ExclusionRule
	DingusURL string
	// NoNumbers leaves headings unnumbered.
	NoNumbers bool
	// NoRules skips the <hr> placed before every h1.
	NoRules bool
}

// Renderer applies numbering, example figures and section filtering.
type Renderer struct {
	opts Options
	log  *slog.Logger
}

func New(opts Options, log *slog.Logger) *Renderer {
	if opts.DingusURL == "" {
		opts.DingusURL = DefaultDingusURL
	}
	return &Renderer{opts: opts, log: log}
}

// Render mutates doc and returns it serialized as HTML. When sections is not
// empty only those sections, together with everything nested under them, are
// kept. Headings are numbered before filtering so kept sections retain their
// place in the full document. Only the headings among doc.Nodes are
// numbered; a heading nested inside another block, such as a blockquote, is
// not a section and keeps its text.
//
// Sectioning and numbering problems are logged and the document is rendered
// without them.
func (r *Renderer) Render(doc *parser.Document, sections []string) ([]byte, error) {
	if doc.Root == nil {
		return nil, ErrNoHTML
	}
	log := r.log.With("title", doc.Title)

	// Titles before numbering, for section matching.
	titles := make(map[*html.Node]string)
	for _, n := range htmldoc.Nodes(doc.Nodes) {
		if htmldoc.IsHeading(n) {
			titles[n] = htmldoc.TextContent(n)
		}
	}

	if doc.HasSections() && !r.opts.NoNumbers {
		if err := section.Number(doc.Nodes, section.NumberOptions{Exclude: r.opts.Exclude}); err != nil {
			log.Warn("skipped malformed headings", "error", err)
		}
	}

	examples := NumberExamples(doc.Root, r.opts.DingusURL)

	if len(sections) > 0 {
		if err := r.keepSections(doc, sections, titles); err != nil {
			log.Warn("rendering unsectioned", "error", err)
		}
	}

	if !r.opts.NoRules {
		InjectHorizontalRules(doc.Root)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Root); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	log.Debug("rendered document", "headings", len(titles), "examples", examples, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (r *Renderer) keepSections(doc *parser.Document, sections []string, titles map[*html.Node]string) error {
	if doc.Parent == nil {
		return section.ErrNotAHeadingRoot
	}
	// Example figures replaced some siblings, so read the list again.
	_, seq := htmldoc.Siblings(doc.Parent)
	groups, err := section.Split(seq)
	if err != nil {
		return fmt.Errorf("split sections: %w", err)
	}

	want := make(map[string]bool, len(sections))
	for _, s := range sections {
		want[s] = true
	}
	kept := section.Filter(groups, func(g section.Group, _ int, _ []section.Group) bool {
		hn, ok := g.Heading.(*htmldoc.Node)
		return ok && want[titles[hn.Node]]
	})

	doc.Nodes = section.Flatten(section.Groups(kept))
	doc.Preamble = nil
	htmldoc.ReplaceChildren(doc.Parent, htmldoc.Nodes(doc.Nodes))
	return nil
}
