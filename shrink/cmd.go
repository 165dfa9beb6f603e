package shrink

import (
	"fmt"

	"github.com/netrixframework/proptest/types"
)

// Cmd is one candidate edit to a failing choice sequence. The set of
// commands is closed; the shrinker dispatches on the concrete type.
type Cmd interface {
	// HasChance is the cheap in-bounds pre-check. Command lists are
	// planned once per pass and the sequence shrinks underneath them, so
	// stale commands are filtered here instead of re-planning mid-pass.
	HasChance(seq *types.Sequence) bool

	fmt.Stringer
}

// ZeroChunk sets every choice in the chunk to 0.
type ZeroChunk struct {
	Chunk types.Chunk
}

func (c ZeroChunk) HasChance(seq *types.Sequence) bool {
	return seq.Contains(c.Chunk)
}

func (c ZeroChunk) String() string {
	return fmt.Sprintf("ZeroChunk(%s)", c.Chunk)
}

// SortChunk reorders the chunk so it is non-decreasing.
type SortChunk struct {
	Chunk types.Chunk
}

func (c SortChunk) HasChance(seq *types.Sequence) bool {
	return seq.Contains(c.Chunk)
}

func (c SortChunk) String() string {
	return fmt.Sprintf("SortChunk(%s)", c.Chunk)
}

// DeleteChunk removes the chunk. When a choice precedes the chunk and is
// positive, a variant that also decrements it is tried first; that is
// what collapses a collection's continue bit together with the element
// it introduced.
type DeleteChunk struct {
	Chunk types.Chunk
}

func (c DeleteChunk) HasChance(seq *types.Sequence) bool {
	return seq.Contains(c.Chunk)
}

func (c DeleteChunk) String() string {
	return fmt.Sprintf("DeleteChunk(%s)", c.Chunk)
}

// MinimizeIndex binary-searches for the smallest replacement of the
// choice at Index that still fails the property.
type MinimizeIndex struct {
	Index int
}

func (c MinimizeIndex) HasChance(seq *types.Sequence) bool {
	return c.Index < seq.Length()
}

func (c MinimizeIndex) String() string {
	return fmt.Sprintf("MinimizeIndex(i=%d)", c.Index)
}

var (
	_ Cmd = ZeroChunk{}
	_ Cmd = SortChunk{}
	_ Cmd = DeleteChunk{}
	_ Cmd = MinimizeIndex{}
)
