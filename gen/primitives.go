package gen

import (
	"golang.org/x/exp/rand"

	"github.com/netrixframework/proptest/types"
)

// Rejection reasons produced by the generators in this package.
const (
	// RejectedCapacity signals the choice sequence hit MaxSequenceLength
	RejectedCapacity = "sequence capacity exceeded"
	// RejectedReplayExhausted signals a replay ran out of recorded choices
	RejectedReplayExhausted = "replay exhausted"
	// RejectedByFilter signals the value was removed by a Filter predicate
	RejectedByFilter = "filtered out"
)

// Constant always generates the same value with an empty footprint.
//
//	Constant(42) --> value 42, sequence [] (always)
//
// Shrinking never changes the value.
func Constant[T any](val T) Generator[T] {
	return New(func(types.Source) types.GenResult[T] {
		return types.Generated(types.NewSequence(), val)
	})
}

// Reject always fails to generate. The reason is tallied by the runner
// and reported if no value could be generated at all.
func Reject[T any](reason string) Generator[T] {
	return New(func(types.Source) types.GenResult[T] {
		return types.Rejected[T](reason)
	})
}

// UintN generates a uniform integer in [0, max]. This is the one
// foundational public generator. It and SliceOf's biased continue bit
// are built on drawChoice, the only place choices are appended to or
// read from the source; everything else composes UintN through Map,
// Filter and plain value logic.
//
//	UintN(10) --> value 5, sequence [5]
//	          --> value 8, sequence [8]
//
// Under a Replay source the recorded choice is returned verbatim, even
// when it exceeds max. The shrinker depends on this transparency: it
// edits raw choices and lets the generator re-interpret them. Shrinks
// towards 0.
func UintN(max uint64) Generator[uint64] {
	return drawChoice(func(rng *rand.Rand) uint64 {
		return NewUniform(max, rng).Rand()
	})
}

// drawChoice appends one sampled choice in Live mode and reads one
// recorded choice verbatim in Replay mode. UintN and the biased coin
// behind SliceOf are the only generators built on it; everything else
// stays at the value level.
func drawChoice(sample func(*rand.Rand) uint64) Generator[uint64] {
	return New(func(src types.Source) types.GenResult[uint64] {
		switch s := src.(type) {
		case *types.Live:
			if s.Seq.IsFull() {
				return types.Rejected[uint64](RejectedCapacity)
			}
			val := sample(s.Rand)
			s.Seq.Append(val)
			return types.Generated(s.Seq, val)
		case *types.Replay:
			val, err := s.Seq.Next()
			if err != nil {
				return types.Rejected[uint64](RejectedReplayExhausted)
			}
			return types.Generated(s.Seq, val)
		default:
			return types.Rejected[uint64]("unknown source")
		}
	})
}

// UintBetween generates a uniform integer between the two arguments,
// both inclusive, in either order.
//
//	UintBetween(3, 10) --> value 3,  sequence [0]
//	                   --> value 10, sequence [7]
//
// When the bounds coincide no randomness is needed and the footprint
// stays empty:
//
//	UintBetween(3, 3) --> value 3, sequence [] (always)
//
// Shrinks towards the smaller bound.
func UintBetween(min, max uint64) Generator[uint64] {
	if min > max {
		return UintBetween(max, min)
	}
	if min == max {
		return Constant(min)
	}
	return Map(UintN(max-min), func(v uint64) uint64 { return v + min })
}

// Bool generates true or false from a single choice.
func Bool() Generator[bool] {
	return Map(UintN(1), func(v uint64) bool { return v != 0 })
}
