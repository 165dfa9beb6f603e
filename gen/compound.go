package gen

import (
	"golang.org/x/exp/rand"

	"github.com/netrixframework/proptest/types"
)

const (
	// RejectedChoiceOutOfRange signals a replayed selector choice that no
	// longer maps to an alternative
	RejectedChoiceOutOfRange = "choice out of range"
	// RejectedNoAlternatives signals OneOf or Frequency with nothing to
	// choose from
	RejectedNoAlternatives = "no alternatives to choose from"
)

// sliceContinueBias is the live probability of growing a slice by one
// more element. Replay interprets the recorded bit as zero/non-zero, so
// zeroing or decrementing it during shrinking terminates the slice.
const sliceContinueBias = 0.8

// defaultMaxSliceLen bounds SliceOf when no explicit range is given.
const defaultMaxSliceLen = 32

// OneOf records one selector choice and delegates to the chosen
// generator. Shrinks towards the first alternative.
func OneOf[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		return Reject[T](RejectedNoAlternatives)
	}
	if len(gens) == 1 {
		return gens[0]
	}
	selector := UintN(uint64(len(gens) - 1))
	return New(func(src types.Source) types.GenResult[T] {
		sel := selector.Generate(src)
		if sel.IsRejected() {
			return types.Rejected[T](sel.Reason())
		}
		if sel.Value() >= uint64(len(gens)) {
			return types.Rejected[T](RejectedChoiceOutOfRange)
		}
		return gens[sel.Value()].Generate(src)
	})
}

// Weighted pairs a generator with its Frequency weight.
type Weighted[T any] struct {
	Weight uint64
	Gen    Generator[T]
}

// Frequency records one selector choice and delegates to an alternative
// with probability proportional to its weight. Zero weights are skipped.
// Shrinks towards the first weighted alternative.
func Frequency[T any](choices ...Weighted[T]) Generator[T] {
	var total uint64
	for _, c := range choices {
		total += c.Weight
	}
	if total == 0 {
		return Reject[T](RejectedNoAlternatives)
	}
	selector := UintN(total - 1)
	return New(func(src types.Source) types.GenResult[T] {
		sel := selector.Generate(src)
		if sel.IsRejected() {
			return types.Rejected[T](sel.Reason())
		}
		v := sel.Value()
		if v >= total {
			return types.Rejected[T](RejectedChoiceOutOfRange)
		}
		for _, c := range choices {
			if v < c.Weight {
				return c.Gen.Generate(src)
			}
			v -= c.Weight
		}
		return types.Rejected[T](RejectedChoiceOutOfRange)
	})
}

// SliceOf generates a slice of up to defaultMaxSliceLen elements.
func SliceOf[T any](elem Generator[T]) Generator[[]T] {
	return SliceOfN(elem, 0, defaultMaxSliceLen)
}

// SliceOfN generates a slice of minLen to maxLen elements. The first
// minLen elements are mandatory; every optional element is preceded by a
// recorded continue bit, which is what lets the shrinker delete an
// element together with the bit that introduced it (and end the slice
// early by decrementing the bit before a deleted chunk).
func SliceOfN[T any](elem Generator[T], minLen, maxLen int) Generator[[]T] {
	minLen, maxLen = types.Min(minLen, maxLen), types.Max(minLen, maxLen)
	continueBit := drawChoice(func(rng *rand.Rand) uint64 {
		return NewBernoulli(sliceContinueBias, rng).Rand()
	})
	return New(func(src types.Source) types.GenResult[[]T] {
		out := make([]T, 0, minLen)
		for len(out) < minLen {
			r := elem.Generate(src)
			if r.IsRejected() {
				return types.Rejected[[]T](r.Reason())
			}
			out = append(out, r.Value())
		}
		for len(out) < maxLen {
			bit := continueBit.Generate(src)
			if bit.IsRejected() {
				return types.Rejected[[]T](bit.Reason())
			}
			if bit.Value() == 0 {
				break
			}
			r := elem.Generate(src)
			if r.IsRejected() {
				return types.Rejected[[]T](r.Reason())
			}
			out = append(out, r.Value())
		}
		return types.Generated(src.Run(), out)
	})
}
