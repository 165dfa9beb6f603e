package util

import (
	crand "crypto/rand"
	"errors"
	"math"
	"math/big"
	"sync"

	"golang.org/x/exp/rand"
)

// Counter is a thread safe natural number counter, increasing with each
// Next until Reset sets it back to 0
type Counter struct {
	counter int
	mtx     *sync.Mutex
}

// NewCounter instantiates Counter
func NewCounter() *Counter {
	return &Counter{
		counter: 0,
		mtx:     new(sync.Mutex),
	}
}

// Next returns the next value
func (id *Counter) Next() int {
	id.mtx.Lock()
	defer id.mtx.Unlock()

	cur := id.counter
	id.counter = id.counter + 1

	return cur
}

// Reset resets the counter to 0
func (id *Counter) Reset() {
	id.mtx.Lock()
	defer id.mtx.Unlock()

	id.counter = 0
}

// RandomSeed draws a fresh seed from the OS entropy pool
func RandomSeed() uint64 {
	r, err := crand.Int(crand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		panic(errors.New("could not read initialize random bytes"))
	}
	return r.Uint64()
}

// NewRand creates the RNG for a test run. A zero seed picks a fresh one
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = RandomSeed()
	}
	return rand.New(rand.NewSource(seed))
}
