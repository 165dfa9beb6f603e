package gen

import (
	"github.com/netrixframework/proptest/types"
)

// Generator produces values of type T from a choice source. Running the
// same generator against a Replay source over a recorded sequence
// reproduces the same value; every generator in this package is a pure
// function of its source.
type Generator[T any] struct {
	fn func(types.Source) types.GenResult[T]
}

// New wraps a raw generating function.
func New[T any](fn func(types.Source) types.GenResult[T]) Generator[T] {
	return Generator[T]{fn: fn}
}

// Generate runs the generator against the source.
func (g Generator[T]) Generate(src types.Source) types.GenResult[T] {
	return g.fn(src)
}

// Map runs f on each generated value.
//
//	Constant(100)                    --> 100
//	Map(Constant(100), plusTwo)      --> 102
//
// Mapping adds nothing to the choice sequence, so shrinking a mapped
// generator is shrinking the underlying one with f re-applied.
func Map[T, U any](g Generator[T], f func(T) U) Generator[U] {
	return New(func(src types.Source) types.GenResult[U] {
		result := g.Generate(src)
		if result.IsRejected() {
			return types.Rejected[U](result.Reason())
		}
		return types.Generated(result.Run(), f(result.Value()))
	})
}

// Map2 combines two generators with f. Both run against the same
// source, so their footprints concatenate.
func Map2[A, B, C any](ga Generator[A], gb Generator[B], f func(A, B) C) Generator[C] {
	return New(func(src types.Source) types.GenResult[C] {
		ra := ga.Generate(src)
		if ra.IsRejected() {
			return types.Rejected[C](ra.Reason())
		}
		rb := gb.Generate(src)
		if rb.IsRejected() {
			return types.Rejected[C](rb.Reason())
		}
		// src.Run() rather than rb.Run(): gb may have an empty footprint
		// (Constant) while ga still recorded choices
		return types.Generated(src.Run(), f(ra.Value(), rb.Value()))
	})
}

// Pair combines two generators into a Tuple.
func Pair[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple[A, B]] {
	return Map2(ga, gb, func(a A, b B) Tuple[A, B] {
		return Tuple[A, B]{First: a, Second: b}
	})
}

// Tuple is the value produced by Pair.
type Tuple[A, B any] struct {
	First  A
	Second B
}

// Filter keeps only values satisfying the predicate; the rest reject
// with RejectedByFilter.
//
//	UintN(10)                  --> 0, 1, 2, ..., 10
//	UintN(10).Filter(odd)      --> 1, 3, 5, ..., 9
//
// Filtering adds nothing to the choice sequence. Shrink candidates whose
// replayed value fails the predicate are discarded as no-improvement, so
// shrunk values still satisfy it.
func (g Generator[T]) Filter(pred func(T) bool) Generator[T] {
	return New(func(src types.Source) types.GenResult[T] {
		result := g.Generate(src)
		if result.IsRejected() {
			return result
		}
		if !pred(result.Value()) {
			return types.Rejected[T](RejectedByFilter)
		}
		return result
	})
}
