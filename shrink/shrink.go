package shrink

import (
	"github.com/netrixframework/proptest/gen"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/types"
)

// State is the current best counterexample: the failing sequence, the
// value it decodes to and the property's failure message.
type State[T any] struct {
	Run     *types.Sequence
	Value   T
	Message string
}

// Shrinker minimizes a failing choice sequence by proposing structural
// edits, replaying the generator over each candidate and keeping any
// edit that still fails the property with a strictly smaller sequence
// under shortlex.
type Shrinker[T any] struct {
	gen      gen.Generator[T]
	property func(T) error
	logger   *log.Logger
	accepted int
}

// NewShrinker creates a Shrinker for the generator and property that
// produced the failure.
func NewShrinker[T any](g gen.Generator[T], property func(T) error, logger *log.Logger) *Shrinker[T] {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return &Shrinker[T]{
		gen:      g,
		property: property,
		logger:   logger,
	}
}

// Accepted returns the number of candidate edits kept so far.
func (s *Shrinker[T]) Accepted() int {
	return s.accepted
}

// Shrink runs the fixed-point loop and returns the failing result for
// the smallest sequence found. Termination is structural: every accepted
// candidate strictly decreases the sequence under shortlex, which is
// bounded below by the empty sequence.
func (s *Shrinker[T]) Shrink(run *types.Sequence, value T, message string) types.TestResult[T] {
	if run.IsEmpty() {
		// nothing to minimize
		return types.FailsWith(value, message)
	}
	s.logger.With(log.LogParams{
		"run":   run.String(),
		"value": value,
	}).Debug("Shrinking counterexample")

	current := State[T]{Run: run, Value: value, Message: message}
	for {
		next := s.pass(current)
		if next.Run.Eq(current.Run) {
			return types.FailsWith(next.Value, next.Message)
		}
		current = next
	}
}

// pass plans commands for the current length and applies each in order.
// The list is not re-planned mid-pass; commands whose chunk has fallen
// out of bounds after an accepted deletion are skipped by HasChance and
// the next pass plans a fresh list for the shorter sequence.
func (s *Shrinker[T]) pass(state State[T]) State[T] {
	for _, cmd := range Cmds(state.Run.Length()) {
		if !cmd.HasChance(state.Run) {
			continue
		}
		next, improved := s.applyCmd(cmd, state)
		if improved {
			s.accepted++
			s.logger.With(log.LogParams{
				"cmd": cmd.String(),
				"run": next.Run.String(),
			}).Debug("Shrunk")
			state = next
		}
	}
	return state
}

func (s *Shrinker[T]) applyCmd(cmd Cmd, state State[T]) (State[T], bool) {
	switch c := cmd.(type) {
	case ZeroChunk:
		trial := state.Run.Clone()
		for i := c.Chunk.Offset; i < c.Chunk.End(); i++ {
			trial.SetAt(i, 0)
		}
		return s.keepIfBetter(trial, state)
	case SortChunk:
		trial := state.Run.Clone()
		trial.SortChunk(c.Chunk)
		return s.keepIfBetter(trial, state)
	case DeleteChunk:
		return s.applyDelete(c, state)
	case MinimizeIndex:
		return s.applyMinimize(c, state)
	}
	return state, false
}

// applyDelete tries the deleted sequence with the choice before the
// chunk decremented, then the plain deletion. The decremented variant
// goes first: when the preceding choice is a collection's continue bit,
// deleting the element without flipping the bit rarely replays.
func (s *Shrinker[T]) applyDelete(c DeleteChunk, state State[T]) (State[T], bool) {
	deleted := state.Run.WithoutChunk(c.Chunk)
	if c.Chunk.Offset >= 1 && deleted.At(c.Chunk.Offset-1) > 0 {
		decremented := deleted.Clone()
		decremented.SetAt(c.Chunk.Offset-1, deleted.At(c.Chunk.Offset-1)-1)
		if next, improved := s.keepIfBetter(decremented, state); improved {
			return next, true
		}
	}
	return s.keepIfBetter(deleted, state)
}

// applyMinimize binary-searches for the smallest replacement of the
// choice that still fails. 0 is tried outright first; when the property
// depends only on the presence of choices and not their size, that
// single probe finishes the job.
func (s *Shrinker[T]) applyMinimize(c MinimizeIndex, state State[T]) (State[T], bool) {
	value := state.Run.At(c.Index)
	if value == 0 {
		return state, false
	}

	trial := state.Run.Clone()
	trial.SetAt(c.Index, 0)
	if next, improved := s.keepIfBetter(trial, state); improved {
		return next, true
	}

	// invariant: lo does not improve, hi does (or is the untouched value)
	improvedAny := false
	lo, hi := uint64(0), value
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		trial := state.Run.Clone()
		trial.SetAt(c.Index, mid)
		if next, improved := s.keepIfBetter(trial, state); improved {
			hi = mid
			state = next
			improvedAny = true
		} else {
			lo = mid
		}
	}
	return state, improvedAny
}

// keepIfBetter accepts the trial when it is strictly smaller under
// shortlex, the generator can replay it, and the property still fails on
// the replayed value. Rejection and property success are symmetric: both
// mean "no improvement". The comparand is the prospective trial itself,
// not the prefix consumed during replay.
func (s *Shrinker[T]) keepIfBetter(trial *types.Sequence, state State[T]) (State[T], bool) {
	if !trial.Less(state.Run) {
		return state, false
	}
	result := s.gen.Generate(types.NewReplay(trial))
	if result.IsRejected() {
		return state, false
	}
	err := s.property(result.Value())
	if err == nil {
		return state, false
	}
	return State[T]{Run: trial, Value: result.Value(), Message: err.Error()}, true
}
