package section

// Group is a heading together with every following node up to the next heading.
type Group struct {
	Heading Node
	Members []Node
}

// Rank returns the rank of the group's heading.
func (g Group) Rank() int { return g.Heading.Rank() }

// Title returns the text of the group's heading.
func (g Group) Title() string { return g.Heading.Text() }

// Nodes returns the heading followed by the members.
func (g Group) Nodes() []Node {
	out := make([]Node, 0, len(g.Members)+1)
	out = append(out, g.Heading)
	return append(out, g.Members...)
}

// Split partitions seq into heading-rooted groups. Every heading opens a new
// group regardless of rank; nesting is reconstructed by BuildForest.
func Split(seq []Node) ([]Group, error) {
	if len(seq) == 0 || !seq[0].Heading() {
		return nil, ErrNotAHeadingRoot
	}

	var groups []Group
	for _, n := range seq {
		if n.Heading() {
			groups = append(groups, Group{Heading: n})
			continue
		}
		last := &groups[len(groups)-1]
		last.Members = append(last.Members, n)
	}
	return groups, nil
}

// Flatten concatenates the nodes of every group in order.
func Flatten(groups []Group) []Node {
	var out []Node
	for _, g := range groups {
		out = append(out, g.Nodes()...)
	}
	return out
}
