package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/specdoc/internal/section"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Paragraphs styled Heading1..Heading6 become
// headings; every other non-empty paragraph becomes a content block.
type DOCXParser struct{}

func (p *DOCXParser) Parse(r io.Reader, filename string) (*Document, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "specdoc-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	d, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	doc := &Document{Title: stem(filename)}
	for _, item := range d.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}

		var block *section.Block
		if level := docxHeadingLevel(para); level > 0 {
			block = section.NewHeading(level, text)
		} else {
			block = section.NewContent(para)
			block.Label = text
		}

		if block.Heading() || len(doc.Nodes) > 0 {
			doc.Nodes = append(doc.Nodes, block)
		} else {
			doc.Preamble = append(doc.Preamble, block)
		}
	}
	return doc, nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	return styleLevel(para.Properties.Style.Val)
}

// styleLevel maps "Heading2" or "heading 2" to 2.
func styleLevel(style string) int {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	if !strings.HasPrefix(s, "heading") || len(s) != len("heading")+1 {
		return 0
	}
	level := int(s[len(s)-1] - '0')
	if level < 1 || level > section.MaxRank {
		return 0
	}
	return level
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
