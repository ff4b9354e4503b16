package section

// SectionNode is a group with the groups nested directly below it.
type SectionNode struct {
	Group
	Children []*SectionNode
}

// TreeOptions controls how BuildForest treats inconsistent nesting.
type TreeOptions struct {
	// Strict fails on a skipped rank or an unresolvable rank instead of
	// falling back to the nearest shallower section or the forest root.
	Strict bool
}

// BuildForest nests groups by heading rank. A group of rank r becomes the last
// child of the most recent group of rank r-1 seen since the last shallower
// heading. Groups that never attach are returned as roots in document order.
func BuildForest(groups []Group, opts TreeOptions) ([]*SectionNode, error) {
	var (
		roots    []*SectionNode
		chain    [MaxRank + 1]*SectionNode
		prevRank = MaxRank + 1
	)

	for i, g := range groups {
		node := &SectionNode{Group: g}
		r := g.Rank()
		if !validRank(r) {
			if opts.Strict {
				return nil, &MalformedHeadingError{Index: i, Text: g.Title()}
			}
			roots = append(roots, node)
			continue
		}

		// A shallower heading invalidates everything recorded at its rank and below.
		if r < prevRank {
			clear(chain[r:])
		}

		if parent := chain[r-1]; r > 1 && parent != nil {
			parent.Children = append(parent.Children, node)
		} else if r > 1 {
			if opts.Strict {
				return nil, &SkippedRankError{Index: i, Rank: r, Text: g.Title()}
			}
			if parent := nearestShallower(chain[:], r); parent != nil {
				parent.Children = append(parent.Children, node)
			} else {
				roots = append(roots, node)
			}
		} else {
			roots = append(roots, node)
		}

		chain[r] = node
		prevRank = r
	}
	return roots, nil
}

func nearestShallower(chain []*SectionNode, r int) *SectionNode {
	for k := r - 1; k >= 1; k-- {
		if chain[k] != nil {
			return chain[k]
		}
	}
	return nil
}

// Walk visits every node of the forest in pre-order. Returning false from fn
// skips the node's children.
func Walk(forest []*SectionNode, fn func(n *SectionNode, depth int) bool) {
	var visit func(n *SectionNode, depth int)
	visit = func(n *SectionNode, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range n.Children {
			visit(c, depth+1)
		}
	}
	for _, n := range forest {
		visit(n, 0)
	}
}

// PreOrder returns the groups of the forest in pre-order.
func PreOrder(forest ...*SectionNode) []Group {
	var out []Group
	Walk(forest, func(n *SectionNode, _ int) bool {
		out = append(out, n.Group)
		return true
	})
	return out
}
