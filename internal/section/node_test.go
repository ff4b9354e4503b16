package section

import "testing"

func TestBlock_ContentLabel(t *testing.T) {
	b := NewContent("raw paragraph")
	b.Label = "plain text"

	if b.Heading() || b.Rank() != 0 {
		t.Errorf("expected content block, got heading=%v rank=%d", b.Heading(), b.Rank())
	}
	if got := b.Text(); got != "plain text" {
		t.Errorf("expected content text from Label, got %q", got)
	}

	blocks := []*Block{h(1, "A"), b, h(2, "B")}
	number(t, blocks)
	if b.Label != "plain text" {
		t.Errorf("expected content label untouched by numbering, got %q", b.Label)
	}
}

func TestBlock_RankOutOfRange(t *testing.T) {
	for _, level := range []int{0, -1, MaxRank + 1} {
		b := &Block{IsHeading: true, Level: level, Label: "x"}
		if got := b.Rank(); got != 0 {
			t.Errorf("level %d: expected rank 0, got %d", level, got)
		}
	}
	if got := NewHeading(MaxRank, "x").Rank(); got != MaxRank {
		t.Errorf("expected rank %d, got %d", MaxRank, got)
	}
}
