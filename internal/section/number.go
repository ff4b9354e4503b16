package section

import (
	"errors"
	"strconv"
	"strings"
)

// NumberOptions configures Number.
type NumberOptions struct {
	Exclude []ExclusionRule
}

// numberer holds the state of one numbering pass.
type numberer struct {
	rules    []ExclusionRule
	counters [MaxRank + 1]int
	lastSeen [MaxRank + 1]Node
}

// Number prefixes every heading in seq with its hierarchical label, for example
// "2.1. ". Excluded headings are left untouched and take no counter value, but
// still count as ancestors so that recursive rules reach their descendants.
//
// Headings whose rank cannot be resolved are skipped. The pass always runs to
// the end; the returned error joins one *MalformedHeadingError per skipped
// heading and is nil when there were none.
func Number(seq []Node, opts NumberOptions) error {
	n := &numberer{rules: opts.Exclude}

	var errs []error
	for i, node := range seq {
		if !node.Heading() {
			continue
		}
		rank := node.Rank()
		if !validRank(rank) {
			errs = append(errs, &MalformedHeadingError{Index: i, Text: node.Text()})
			continue
		}
		n.visit(node, rank)
	}
	return errors.Join(errs...)
}

func (n *numberer) visit(node Node, rank int) {
	if !n.excluded(node, rank) {
		n.counters[rank]++
		// Deeper counts restart under every numbered heading, even when the
		// heading before it was excluded at the same rank.
		clear(n.counters[rank+1:])
		clear(n.lastSeen[rank+1:])
		node.PrefixText(n.label(rank) + ". ")
	}

	n.lastSeen[rank] = node
}

func (n *numberer) label(rank int) string {
	return Label(n.counters[1 : rank+1]...)
}

func (n *numberer) excluded(node Node, rank int) bool {
	for _, rule := range n.rules {
		if rule.matches(node, rank) {
			return true
		}
		if rule.propagates() && n.hasAncestor(rank, rule.Text) {
			return true
		}
	}
	return false
}

// hasAncestor follows the rank chain upward from rank-1 and stops at the first
// rank with no recorded heading.
func (n *numberer) hasAncestor(rank int, text string) bool {
	for r := rank - 1; r >= 1; r-- {
		anc := n.lastSeen[r]
		if anc == nil {
			return false
		}
		if anc.Text() == text {
			return true
		}
	}
	return false
}

// Label returns the prefix Number would give a heading with the given counters,
// for example Label(2, 1, 3) == "2.1.3".
func Label(counts ...int) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}
