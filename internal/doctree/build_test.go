package doctree

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dgallion1/specdoc/internal/parser"
	"github.com/dgallion1/specdoc/internal/render"
	"github.com/dgallion1/specdoc/internal/section"
)

func sample() []section.Node {
	return []section.Node{
		section.NewHeading(1, "Intro"),
		section.NewContent("p"),
		section.NewHeading(2, "Background"),
		section.NewHeading(3, "Detail"),
		section.NewHeading(2, "Scope"),
		section.NewHeading(1, "Appendix"),
		section.NewHeading(2, "Tables"),
	}
}

func TestBuild_Numbered(t *testing.T) {
	tree, err := Build("Spec", sample(), BuildOptions{
		Number:  true,
		Exclude: []section.ExclusionRule{section.Exclude("Appendix")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree.Children))
	}
	intro := tree.Children[0]
	if intro.Title != "1. Intro" || intro.Children[0].Title != "1.1. Background" {
		t.Errorf("unexpected numbering %q / %q", intro.Title, intro.Children[0].Title)
	}
	if got := intro.Children[0].Children[0].Title; got != "1.1.1. Detail" {
		t.Errorf("expected 1.1.1. Detail, got %q", got)
	}
	app := tree.Children[1]
	if app.Title != "Appendix" || app.Children[0].Title != "Tables" {
		t.Errorf("expected Appendix subtree unnumbered, got %q / %q", app.Title, app.Children[0].Title)
	}
	if len(tree.Warnings) != 0 {
		t.Errorf("unexpected warnings %v", tree.Warnings)
	}
}

func TestBuild_MaxRank(t *testing.T) {
	tree, err := Build("Spec", sample(), BuildOptions{MaxRank: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Count() != 5 {
		t.Errorf("expected 5 sections down to rank 2, got %d", tree.Count())
	}
	if len(tree.Children[0].Children[0].Children) != 0 {
		t.Errorf("expected Detail folded away")
	}
}

func TestBuild_Strict(t *testing.T) {
	nodes := []section.Node{section.NewHeading(1, "A"), section.NewHeading(3, "C")}

	if _, err := Build("x", nodes, BuildOptions{Strict: true}); !IsNestingError(err) {
		t.Errorf("expected nesting error, got %v", err)
	}
	tree, err := Build("x", nodes, BuildOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 || len(tree.Children[0].Children) != 1 {
		t.Errorf("expected C attached under A")
	}
}

func TestBuild_Warnings(t *testing.T) {
	nodes := []section.Node{
		section.NewHeading(1, "A"),
		&section.Block{IsHeading: true, Level: 8, Label: "odd"},
		&section.Block{IsHeading: true, Level: -1, Label: "worse"},
	}
	tree, err := Build("x", nodes, BuildOptions{Number: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", tree.Warnings)
	}
}

func TestBuild_Empty(t *testing.T) {
	tree, err := Build("x", nil, BuildOptions{Number: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Count() != 0 {
		t.Errorf("expected empty outline")
	}
}

func TestBuild_NotAHeadingRoot(t *testing.T) {
	_, err := Build("x", []section.Node{section.NewContent("p")}, BuildOptions{})
	if !errors.Is(err, section.ErrNotAHeadingRoot) {
		t.Errorf("expected ErrNotAHeadingRoot, got %v", err)
	}
}

func TestBuild_AnchorsMatchRenderedIDs(t *testing.T) {
	const src = "# Intro\n\n## Tabs\n\n## Tabs\n"
	parse := func() *parser.Document {
		doc, err := (&parser.MarkdownParser{}).Parse(strings.NewReader(src), "spec.md")
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		return doc
	}

	tree, err := Build("Spec", parse().Nodes, BuildOptions{Number: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var anchors []string
	tree.Flatten(func(n *DocNode, _ []string) { anchors = append(anchors, n.Anchor) })
	want := []string{"intro", "tabs", "tabs-1"}
	if len(anchors) != len(want) {
		t.Fatalf("expected anchors %v, got %v", want, anchors)
	}
	for i := range want {
		if anchors[i] != want[i] {
			t.Errorf("anchor %d: expected %q, got %q", i, want[i], anchors[i])
		}
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	out, err := render.New(render.Options{}, log).Render(parse(), nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, a := range anchors {
		if !strings.Contains(string(out), `id="`+a+`"`) {
			t.Errorf("anchor %q does not resolve in rendered html", a)
		}
	}
}

func TestBuild_BlockAnchorsFallBackToSlug(t *testing.T) {
	tree, err := Build("Spec", sample(), BuildOptions{Number: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tree.Children[0].Anchor; got != "1-intro" {
		t.Errorf("expected slug anchor 1-intro, got %q", got)
	}
}
