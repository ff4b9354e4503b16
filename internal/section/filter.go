package section

// Predicate decides whether a group is kept. It sees the group, its index and
// the full group list.
type Predicate func(g Group, index int, all []Group) bool

// FilteredGroup is an accepted group whose members may have grown by absorbing
// later, deeper groups. It owns its member slice.
type FilteredGroup struct {
	Group
	Absorbed []Group // absorbed groups in order, also spliced into Members
}

func (f *FilteredGroup) absorb(g Group) {
	f.Members = append(f.Members, g.Heading)
	f.Members = append(f.Members, g.Members...)
	f.Absorbed = append(f.Absorbed, g)
}

// Filter keeps every group accepted by keep, together with the rejected groups
// nested below it. A rejected group is folded into the most recently accepted
// group while its rank is strictly deeper than that group's rank; a rejected
// group at the same or a shallower rank ends the accepted group's scope and is
// dropped. A nil keep accepts every group.
func Filter(groups []Group, keep Predicate) []FilteredGroup {
	var out []FilteredGroup
	current := -1 // index into out of the accepted group still in scope

	for i, g := range groups {
		if keep == nil || keep(g, i, groups) {
			members := make([]Node, len(g.Members))
			copy(members, g.Members)
			out = append(out, FilteredGroup{Group: Group{Heading: g.Heading, Members: members}})
			current = len(out) - 1
			continue
		}
		if current >= 0 && g.Rank() > out[current].Rank() {
			out[current].absorb(g)
			continue
		}
		current = -1
	}
	return out
}

// Groups returns the filtered groups as plain groups.
func Groups(filtered []FilteredGroup) []Group {
	out := make([]Group, len(filtered))
	for i, f := range filtered {
		out[i] = f.Group
	}
	return out
}

// ByTitle returns a predicate that keeps groups whose heading text is one of titles.
func ByTitle(titles ...string) Predicate {
	set := make(map[string]bool, len(titles))
	for _, t := range titles {
		set[t] = true
	}
	return func(g Group, _ int, _ []Group) bool {
		return set[g.Title()]
	}
}

// ByMaxRank returns a predicate that keeps groups of rank 1..max.
func ByMaxRank(max int) Predicate {
	return func(g Group, _ int, _ []Group) bool {
		r := g.Rank()
		return r >= 1 && r <= max
	}
}
