package section

import "testing"

func TestFilter_RankOneAbsorbsDeeper(t *testing.T) {
	seq := seqOf(h(1, "A"), h(2, "B"), h(1, "C"))
	groups := mustSplit(t, seq)

	got := Filter(groups, ByMaxRank(1))
	if len(got) != 2 {
		t.Fatalf("expected 2 accepted groups, got %d", len(got))
	}
	if got[0].Title() != "A" || got[1].Title() != "C" {
		t.Errorf("expected A and C, got %q and %q", got[0].Title(), got[1].Title())
	}
	if len(got[0].Members) != 1 || got[0].Members[0] != seq[1] {
		t.Errorf("expected B absorbed into A, got members %v", got[0].Members)
	}
	if len(got[0].Absorbed) != 1 || got[0].Absorbed[0].Title() != "B" {
		t.Errorf("expected Absorbed to record B, got %v", titles(got[0].Absorbed))
	}
	if len(got[1].Members) != 0 {
		t.Errorf("expected C to have no members, got %d", len(got[1].Members))
	}
}

func TestFilter_MatchAllIsIdentity(t *testing.T) {
	seq := seqOf(h(1, "A"), p("a"), h(2, "B"), p("b"), h(3, "C"), h(2, "D"), p("d"))
	groups := mustSplit(t, seq)

	always := func(Group, int, []Group) bool { return true }
	for _, pred := range []Predicate{always, nil} {
		got := Filter(groups, pred)
		if len(got) != len(groups) {
			t.Fatalf("expected %d groups, got %d", len(groups), len(got))
		}
		for i := range groups {
			if got[i].Heading != groups[i].Heading {
				t.Errorf("group %d: heading changed", i)
			}
			if len(got[i].Members) != len(groups[i].Members) {
				t.Errorf("group %d: expected %d members, got %d", i, len(groups[i].Members), len(got[i].Members))
			}
			if len(got[i].Absorbed) != 0 {
				t.Errorf("group %d: unexpected absorption", i)
			}
		}
	}
}

func TestFilter_SameRankRejectClearsScope(t *testing.T) {
	// "Drop" ends the scope of "Keep", so "Orphan" below it must not be
	// absorbed into "Keep".
	seq := seqOf(h(2, "Keep"), p("k"), h(2, "Drop"), h(3, "Orphan"), p("o"), h(2, "Keep"), h(3, "Child"))
	groups := mustSplit(t, seq)

	got := Filter(groups, ByTitle("Keep"))
	if len(got) != 2 {
		t.Fatalf("expected 2 accepted groups, got %d", len(got))
	}
	if len(got[0].Members) != 1 {
		t.Errorf("expected first Keep to hold only its paragraph, got %d members", len(got[0].Members))
	}
	if len(got[1].Members) != 1 || got[1].Members[0] != seq[6] {
		t.Errorf("expected Child absorbed into second Keep, got %d members", len(got[1].Members))
	}
}

func TestFilter_RejectBeforeAnyMatchIsDropped(t *testing.T) {
	seq := seqOf(h(1, "Pre"), h(2, "PreChild"), h(1, "Target"), h(2, "Sub"), p("s"))
	groups := mustSplit(t, seq)

	got := Filter(groups, ByTitle("Target"))
	if len(got) != 1 {
		t.Fatalf("expected 1 group, got %d", len(got))
	}
	if len(got[0].Members) != 2 {
		t.Errorf("expected Sub heading and paragraph absorbed, got %d members", len(got[0].Members))
	}
}

func TestFilter_ContiguityInvariant(t *testing.T) {
	seq := seqOf(
		h(1, "a"), h(2, "b"), h(3, "c"), h(2, "d"),
		h(1, "e"), h(3, "f"), h(2, "g"), h(4, "h"), h(1, "i"),
	)
	groups := mustSplit(t, seq)

	preds := map[string]Predicate{
		"rank1":  ByMaxRank(1),
		"rank2":  ByMaxRank(2),
		"odd":    func(_ Group, i int, _ []Group) bool { return i%2 == 1 },
		"titled": ByTitle("b", "g"),
	}
	for name, pred := range preds {
		for _, f := range Filter(groups, pred) {
			for _, abs := range f.Absorbed {
				if abs.Rank() <= f.Rank() {
					t.Errorf("%s: group %q (rank %d) absorbed into %q (rank %d)",
						name, abs.Title(), abs.Rank(), f.Title(), f.Rank())
				}
			}
		}
	}
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	seq := seqOf(h(1, "A"), p("a"), h(2, "B"), p("b"))
	groups := mustSplit(t, seq)
	before := len(groups[0].Members)

	_ = Filter(groups, ByMaxRank(1))
	if len(groups[0].Members) != before {
		t.Errorf("expected input group untouched, members went from %d to %d", before, len(groups[0].Members))
	}
}

func TestFilter_PredicateSeesIndexAndAll(t *testing.T) {
	seq := seqOf(h(1, "A"), h(1, "B"), h(1, "C"))
	groups := mustSplit(t, seq)

	var seen []int
	Filter(groups, func(g Group, i int, all []Group) bool {
		if len(all) != 3 {
			t.Errorf("expected all to hold 3 groups, got %d", len(all))
		}
		if all[i].Heading != g.Heading {
			t.Errorf("index %d does not match group %q", i, g.Title())
		}
		seen = append(seen, i)
		return false
	})
	if len(seen) != 3 {
		t.Errorf("expected predicate called 3 times, got %d", len(seen))
	}
}
