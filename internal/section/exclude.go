package section

// ExclusionRule suppresses numbering for headings whose text equals Text.
//
// With Rank set, only headings of exactly that rank match and nothing
// propagates. With Rank zero the heading matches at any rank, and Recursive
// also excludes every heading nested below a matching one.
//
// Matching is by exact text, so two headings with the same text cannot be told
// apart: excluding one excludes both, along with their descendants.
type ExclusionRule struct {
	Text      string `toml:"text" json:"text"`
	Rank      int    `toml:"rank" json:"rank,omitempty"`
	Recursive bool   `toml:"recursive" json:"recursive,omitempty"`
}

// Exclude is the bare-string form of a rule: any rank, recursive.
func Exclude(text string) ExclusionRule {
	return ExclusionRule{Text: text, Recursive: true}
}

func (r ExclusionRule) matches(n Node, rank int) bool {
	if n.Text() != r.Text {
		return false
	}
	return r.Rank == 0 || r.Rank == rank
}

func (r ExclusionRule) propagates() bool {
	return r.Recursive && r.Rank == 0
}
