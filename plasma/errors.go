package plasma

import "errors"

var (
	// ErrEmptyTree mirrors merklesum.ErrEmptyTree: a PMST needs at least
	// one transfer to build from.
	ErrEmptyTree = errors.New("plasma: cannot build a tree from zero transfers")
	// ErrOverlappingRanges is returned when two transfers in the same
	// block claim overlapping [start, end) coin ranges.
	ErrOverlappingRanges = errors.New("plasma: overlapping transfer ranges")
	// ErrSumOverflow is returned when an internal sum would exceed 128 bits.
	ErrSumOverflow = errors.New("plasma: sum overflows 128 bits")
	// ErrIndexOutOfRange is returned by GetInclusionProof for an absent leaf.
	ErrIndexOutOfRange = errors.New("plasma: leaf index out of range")
)
