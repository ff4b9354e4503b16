package section

import "testing"

func h(rank int, text string) *Block { return NewHeading(rank, text) }

func p(raw string) *Block { return NewContent(raw) }

func seqOf(nodes ...*Block) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

func titles(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Title()
	}
	return out
}

func mustSplit(t *testing.T, seq []Node) []Group {
	t.Helper()
	groups, err := Split(seq)
	if err != nil {
		t.Fatalf("Split: unexpected error: %v", err)
	}
	return groups
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
