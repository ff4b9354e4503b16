package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/dgallion1/specdoc/internal/section"
)

// rulesFile is the TOML layout of an exclusion rule file:
//
//	# Bare titles: any rank, descendants excluded too.
//	skip = ["Appendix: A parsing strategy"]
//
//	[[exclude]]
//	text = "Introduction"
//	rank = 1          # only this rank, no propagation
//
//	[[exclude]]
//	text = "Examples"
//	recursive = true
//
// Rules match heading text exactly. Headings that share a title are excluded
// together, along with their descendants when the rule is recursive.
type rulesFile struct {
	Skip    []string                `toml:"skip"`
	Exclude []section.ExclusionRule `toml:"exclude"`
}

// LoadRules reads an exclusion rule file. An empty path yields no rules.
func LoadRules(path string) ([]section.ExclusionRule, error) {
	if path == "" {
		return nil, nil
	}
	var f rulesFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode rules %s: %w", path, err)
	}
	return f.rules()
}

// ParseRules decodes rules from TOML text.
func ParseRules(data string) ([]section.ExclusionRule, error) {
	var f rulesFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode rules: %w", err)
	}
	return f.rules()
}

func (f rulesFile) rules() ([]section.ExclusionRule, error) {
	rules := make([]section.ExclusionRule, 0, len(f.Skip)+len(f.Exclude))
	for _, s := range f.Skip {
		rules = append(rules, section.Exclude(s))
	}
	for i, r := range f.Exclude {
		if r.Text == "" {
			return nil, fmt.Errorf("exclude[%d]: text is required", i)
		}
		if r.Rank < 0 || r.Rank > section.MaxRank {
			return nil, fmt.Errorf("exclude[%d] %q: rank %d out of range 1..%d", i, r.Text, r.Rank, section.MaxRank)
		}
		rules = append(rules, r)
	}
	return rules, nil
}
