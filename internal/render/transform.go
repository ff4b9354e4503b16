package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dgallion1/specdoc/internal/htmldoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InjectHorizontalRules inserts an <hr> before every h1 element below root and
// returns the number inserted.
func InjectHorizontalRules(root *html.Node) int {
	var h1s []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.H1 {
			h1s = append(h1s, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for _, h := range h1s {
		h.Parent.InsertBefore(element(atom.Hr), h)
	}
	return len(h1s)
}

// exampleSeparator splits the markdown half of an example from its HTML half.
const exampleSeparator = "\n.\n"

// NumberExamples replaces every <pre><code class="language-example"> block
// with a numbered two-column figure: the markdown source on the left, the
// expected HTML on the right, and a "Try It" link to the dingus. It returns
// the number of examples found.
func NumberExamples(root *html.Node, dingusURL string) int {
	var pres []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isExamplePre(n) {
			pres = append(pres, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	for i, pre := range pres {
		wrapExample(pre, i+1, dingusURL)
	}
	return len(pres)
}

func isExamplePre(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Pre {
		return false
	}
	code := n.FirstChild
	if code == nil || code.Type != html.ElementNode || code.DataAtom != atom.Code {
		return false
	}
	for _, class := range strings.Fields(attr(code, "class")) {
		if class == "language-example" {
			return true
		}
	}
	return false
}

func wrapExample(pre *html.Node, number int, dingusURL string) {
	code := pre.FirstChild
	source, expected, _ := strings.Cut(htmldoc.TextContent(code), exampleSeparator)
	replaceWithText(code, source)

	id := fmt.Sprintf("example-%d", number)
	parent, next := pre.Parent, pre.NextSibling
	parent.RemoveChild(pre)

	dingus := element(atom.A,
		"class", "dingus",
		"href", dingusURL+"?text="+escapeComponent(source),
		"title", "open in interactive dingus",
		"target", "_blank",
		"rel", "noopener noreferrer",
	)
	dingus.AppendChild(text("Try It"))

	anchor := element(atom.A, "href", "#"+id)
	anchor.AppendChild(text(fmt.Sprintf("Example %d", number)))
	title := element(atom.Span, "class", "title")
	title.AppendChild(anchor)

	caption := element(atom.Figcaption)
	caption.AppendChild(title)
	caption.AppendChild(dingus)

	left := element(atom.Div, "class", "column left")
	left.AppendChild(pre)

	outCode := element(atom.Code)
	outCode.AppendChild(text(expected))
	outPre := element(atom.Pre)
	outPre.AppendChild(outCode)
	right := element(atom.Div, "class", "column right")
	right.AppendChild(outPre)

	columns := element(atom.Div, "class", "columns")
	columns.AppendChild(left)
	columns.AppendChild(right)

	figure := element(atom.Figure, "id", id, "class", "example-code")
	figure.AppendChild(caption)
	figure.AppendChild(columns)

	parent.InsertBefore(figure, next)
}

// escapeComponent escapes s for a query value with spaces as %20, which the
// dingus decodes with decodeURIComponent.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func element(a atom.Atom, kv ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func replaceWithText(n *html.Node, s string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(text(s))
}
