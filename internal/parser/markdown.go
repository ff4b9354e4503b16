package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// MarkdownParser handles Markdown files using goldmark. The source is rendered
// to HTML first so that numbering and sectioning work on the same tree that is
// served.
type MarkdownParser struct{}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
		// Spec documents embed raw HTML in their examples.
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)
}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	meta, body := splitFrontMatter(src)

	var out bytes.Buffer
	if err := newMarkdown().Convert(body, &out); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	root, err := html.Parse(&out)
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}

	doc := fromHTML(root)
	doc.Title = stem(filename)
	if t := meta["title"]; t != "" {
		doc.Title = t
	}
	return doc, nil
}

// splitFrontMatter separates a leading YAML-style metadata block delimited by
// "---" and "---" or "...". Only flat "key: value" lines are read.
func splitFrontMatter(src []byte) (map[string]string, []byte) {
	if !bytes.HasPrefix(src, []byte("---\n")) {
		return nil, src
	}

	meta := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(src[4:]))
	offset := 4
	for scanner.Scan() {
		line := scanner.Text()
		offset += len(line) + 1
		if line == "---" || line == "..." {
			if offset > len(src) {
				offset = len(src)
			}
			return meta, src[offset:]
		}
		if k, v, ok := strings.Cut(line, ":"); ok {
			meta[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `'"`)
		}
	}
	// Unterminated: treat the whole input as markdown.
	return nil, src
}
