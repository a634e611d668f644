package merklesum

import "errors"

var (
	// ErrEmptyTree is returned by New when given zero leaves.
	ErrEmptyTree = errors.New("merklesum: cannot build a tree from zero leaves")
	// ErrSumOverflow is returned when a parent sum would exceed the
	// 128-bit UInt_16 capacity.
	ErrSumOverflow = errors.New("merklesum: sum overflows 128 bits")
	// ErrIndexOutOfRange is returned when a leaf index lies outside
	// [0, leafCount).
	ErrIndexOutOfRange = errors.New("merklesum: leaf index out of range")
	// ErrMalformedNode is returned when a serialized node does not have
	// the expected 48-byte width.
	ErrMalformedNode = errors.New("merklesum: malformed 48-byte node")
)
