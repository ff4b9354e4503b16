package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/specdoc/internal/section"
	"golang.org/x/net/html"
)

// Document is a parsed source isolated to the sibling list holding its headings.
type Document struct {
	Title string

	// Root is the HTML form of the document. It is nil for sources that have
	// no HTML form, such as DOCX.
	Root *html.Node
	// Parent is the element whose children are Preamble followed by Nodes.
	Parent *html.Node

	Preamble []section.Node // content before the first heading
	Nodes    []section.Node // starts with a heading; empty when none was found
}

// HasSections reports whether the document contains any heading.
func (d *Document) HasSections() bool {
	return len(d.Nodes) > 0
}

// Parser converts raw document bytes into a Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*Document, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func stem(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
