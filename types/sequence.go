package types

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// MaxSequenceLength is the hard cap on the number of choices a single
// generation attempt may record. A Live source that is full rejects the
// next draw instead of growing further.
const MaxSequenceLength = 64 * 1024

// ErrReplayExhausted is returned by Next when the cursor has consumed
// every recorded choice.
var ErrReplayExhausted = errors.New("replay exhausted")

// Sequence is an ordered list of choices recorded while generating a
// value. Replaying a generator against the same sequence reproduces the
// same value, which is what makes shrinking possible: the shrinker edits
// the raw choices and re-interprets them through the generator.
type Sequence struct {
	choices []uint64
	cursor  int
}

// NewSequence creates an empty sequence, ready to record choices.
func NewSequence() *Sequence {
	return &Sequence{choices: make([]uint64, 0)}
}

// SequenceOf creates a sequence holding the given choices.
func SequenceOf(choices ...uint64) *Sequence {
	elems := make([]uint64, len(choices))
	copy(elems, choices)
	return &Sequence{choices: elems}
}

// Append records one choice at the end of the sequence.
func (s *Sequence) Append(v uint64) {
	s.choices = append(s.choices, v)
}

// Next reads the choice under the cursor and advances the cursor. Once
// every choice has been consumed it returns ErrReplayExhausted.
func (s *Sequence) Next() (uint64, error) {
	if s.cursor >= len(s.choices) {
		return 0, ErrReplayExhausted
	}
	v := s.choices[s.cursor]
	s.cursor++
	return v, nil
}

// At returns the choice at index i. Indexing out of range panics; shrink
// commands are gated by HasChance before they touch the sequence.
func (s *Sequence) At(i int) uint64 {
	return s.choices[i]
}

// SetAt overwrites the choice at index i.
func (s *Sequence) SetAt(i int, v uint64) {
	s.choices[i] = v
}

// Length returns the number of recorded choices.
func (s *Sequence) Length() int {
	return len(s.choices)
}

// IsEmpty indicates whether the sequence holds no choices.
func (s *Sequence) IsEmpty() bool {
	return len(s.choices) == 0
}

// IsFull indicates whether the sequence has hit MaxSequenceLength.
func (s *Sequence) IsFull() bool {
	return len(s.choices) >= MaxSequenceLength
}

// Contains indicates whether the chunk lies fully within the sequence.
func (s *Sequence) Contains(c Chunk) bool {
	return c.End() <= len(s.choices)
}

// Eq compares two sequences element by element.
func (s *Sequence) Eq(o *Sequence) bool {
	if len(s.choices) != len(o.choices) {
		return false
	}
	for i, v := range s.choices {
		if o.choices[i] != v {
			return false
		}
	}
	return true
}

// Less orders sequences by shortlex: a shorter sequence is strictly
// smaller, equal lengths compare lexicographically. This is the progress
// metric of the shrinker; every accepted candidate strictly decreases
// under it.
func (s *Sequence) Less(o *Sequence) bool {
	if len(s.choices) != len(o.choices) {
		return len(s.choices) < len(o.choices)
	}
	for i, v := range s.choices {
		if v != o.choices[i] {
			return v < o.choices[i]
		}
	}
	return false
}

// Clone returns a copy of the sequence with the cursor reset. Trials are
// always produced on copies so a discarded candidate never disturbs the
// current best state.
func (s *Sequence) Clone() *Sequence {
	elems := make([]uint64, len(s.choices))
	copy(elems, s.choices)
	return &Sequence{choices: elems}
}

// WithoutChunk returns a copy of the sequence with the chunk removed.
// The receiver is left untouched.
func (s *Sequence) WithoutChunk(c Chunk) *Sequence {
	elems := make([]uint64, 0, len(s.choices)-int(c.Size))
	elems = append(elems, s.choices[:c.Offset]...)
	elems = append(elems, s.choices[c.End():]...)
	return &Sequence{choices: elems}
}

// SortChunk reorders the chunk range in place so it is non-decreasing.
// Choices outside the chunk are untouched.
func (s *Sequence) SortChunk(c Chunk) {
	window := s.choices[c.Offset:c.End()]
	sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
}

func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.choices {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	b.WriteByte(']')
	return b.String()
}
