package doctree

import (
	"errors"
	"fmt"

	"github.com/dgallion1/specdoc/internal/section"
)

// BuildOptions controls Build.
type BuildOptions struct {
	// Number prefixes headings with their hierarchical label first.
	Number  bool
	Exclude []section.ExclusionRule
	// MaxRank limits the outline to ranks 1..MaxRank. Zero keeps every rank.
	MaxRank int
	// Strict rejects skipped and unresolvable ranks.
	Strict bool
}

// Build sections a heading sequence and returns its outline. nodes may be
// empty, in which case the outline has no sections. Numbering modifies the
// heading text of nodes in place.
func Build(title string, nodes []section.Node, opts BuildOptions) (*DocTree, error) {
	if len(nodes) == 0 {
		return &DocTree{Title: title}, nil
	}

	var warnings []string
	if opts.Number {
		if err := section.Number(nodes, section.NumberOptions{Exclude: opts.Exclude}); err != nil {
			warnings = splitJoined(err)
		}
	}

	groups, err := section.Split(nodes)
	if err != nil {
		return nil, fmt.Errorf("split sections: %w", err)
	}
	if opts.MaxRank > 0 {
		groups = section.Groups(section.Filter(groups, section.ByMaxRank(opts.MaxRank)))
	}

	forest, err := section.BuildForest(groups, section.TreeOptions{Strict: opts.Strict})
	if err != nil {
		return nil, fmt.Errorf("build sections: %w", err)
	}

	tree := FromForest(title, forest)
	tree.Warnings = warnings
	return tree, nil
}

func splitJoined(err error) []string {
	var out []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// IsNestingError reports whether err comes from inconsistent heading ranks
// rather than from the input itself.
func IsNestingError(err error) bool {
	return errors.Is(err, section.ErrSkippedRank) || errors.Is(err, section.ErrMalformedHeading)
}
