package gen

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution shapes the live sampling of a single choice. Only Live
// draws go through a distribution; Replay reads raw recorded choices, so
// sampling bias never affects replay semantics.
type Distribution interface {
	Rand() uint64
}

// Uniform draws integers uniformly from [0, max].
type Uniform struct {
	dist *distuv.Uniform
	max  uint64
}

// NewUniform creates a Uniform over [0, max] backed by the given source.
func NewUniform(max uint64, src rand.Source) *Uniform {
	return &Uniform{
		dist: &distuv.Uniform{
			Min: 0,
			Max: float64(max) + 1,
			Src: src,
		},
		max: max,
	}
}

func (u *Uniform) Rand() uint64 {
	v := uint64(u.dist.Rand())
	// guard the open upper end of the float interval
	if v > u.max {
		v = u.max
	}
	return v
}

// Bernoulli draws 1 with probability P and 0 otherwise.
type Bernoulli struct {
	dist *distuv.Bernoulli
}

// NewBernoulli creates a Bernoulli coin with the given bias.
func NewBernoulli(p float64, src rand.Source) *Bernoulli {
	return &Bernoulli{
		dist: &distuv.Bernoulli{
			P:   p,
			Src: src,
		},
	}
}

func (b *Bernoulli) Rand() uint64 {
	return uint64(b.dist.Rand())
}

var (
	_ Distribution = &Uniform{}
	_ Distribution = &Bernoulli{}
)
