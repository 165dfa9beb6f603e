package types

import (
	"golang.org/x/exp/rand"
)

// Source is the closed union of the two ways a generator obtains
// choices: sampling fresh ones (Live) or consuming a recording (Replay).
// Generators dispatch on the concrete variant with a type switch.
type Source interface {
	// Run returns the sequence owned by the source.
	Run() *Sequence

	source()
}

// Live appends freshly sampled choices to a growing sequence. The RNG is
// owned by the runner and shared by reference for the duration of one
// generation attempt.
type Live struct {
	Seq  *Sequence
	Rand *rand.Rand
}

// NewLive creates a Live source with an empty sequence.
func NewLive(rng *rand.Rand) *Live {
	return &Live{Seq: NewSequence(), Rand: rng}
}

func (l *Live) Run() *Sequence { return l.Seq }

func (l *Live) source() {}

// Replay consumes choices from a prerecorded sequence via its cursor.
// Reading past the end rejects with ErrReplayExhausted.
type Replay struct {
	Seq *Sequence
}

// NewReplay creates a Replay source over a copy of the given sequence,
// so the caller's sequence keeps a pristine cursor.
func NewReplay(seq *Sequence) *Replay {
	return &Replay{Seq: seq.Clone()}
}

func (r *Replay) Run() *Sequence { return r.Seq }

func (r *Replay) source() {}

var (
	_ Source = &Live{}
	_ Source = &Replay{}
)
