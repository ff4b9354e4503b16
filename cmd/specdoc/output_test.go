package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dgallion1/specdoc/internal/doctree"
)

func TestFormatOutline(t *testing.T) {
	tree := &doctree.DocTree{
		Title: "Spec",
		Children: []*doctree.DocNode{
			{Title: "1. Intro", Rank: 1, Anchor: "1-intro", Children: []*doctree.DocNode{
				{Title: "1.1. Tabs", Rank: 2, Anchor: "1-1-tabs"},
			}},
			{Title: "Appendix", Rank: 1, Anchor: "appendix"},
		},
		Warnings: []string{"heading 4: malformed"},
	}

	var buf bytes.Buffer
	FormatOutline(&buf, tree)
	out := buf.String()

	for _, want := range []string{"Spec", "Sections:", "3", "h1", "1. Intro", "#1-intro", "Appendix", "warning: ", "heading 4: malformed"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	var tabsLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "1.1. Tabs") {
			tabsLine = line
		}
	}
	if !strings.HasPrefix(tabsLine, "  ") {
		t.Errorf("expected nested section indented, got %q", tabsLine)
	}
	if strings.Index(out, "1.1. Tabs") > strings.Index(out, "Appendix") {
		t.Error("expected pre-order output")
	}
}
