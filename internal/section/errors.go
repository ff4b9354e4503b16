package section

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAHeadingRoot is returned when a sequence does not start with a heading.
	ErrNotAHeadingRoot = errors.New("first node is not a heading")

	// ErrSkippedRank is returned when a heading has no parent candidate one rank up.
	ErrSkippedRank = errors.New("heading skips a rank")

	// ErrMalformedHeading is returned for headings whose rank cannot be resolved.
	ErrMalformedHeading = errors.New("heading rank is not resolvable")
)

// SkippedRankError reports the group that could not find a parent.
type SkippedRankError struct {
	Index int // group index
	Rank  int
	Text  string
}

func (e *SkippedRankError) Error() string {
	return fmt.Sprintf("group %d %q: rank %d has no rank %d parent", e.Index, e.Text, e.Rank, e.Rank-1)
}

func (e *SkippedRankError) Unwrap() error { return ErrSkippedRank }

// MalformedHeadingError reports a heading that was skipped.
type MalformedHeadingError struct {
	Index int // position in the sequence or group list
	Text  string
}

func (e *MalformedHeadingError) Error() string {
	return fmt.Sprintf("heading %d %q: rank is not resolvable", e.Index, e.Text)
}

func (e *MalformedHeadingError) Unwrap() error { return ErrMalformedHeading }
