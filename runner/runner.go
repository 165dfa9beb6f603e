package runner

import (
	"github.com/netrixframework/proptest/config"
	ctx "github.com/netrixframework/proptest/context"
	"github.com/netrixframework/proptest/gen"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/shrink"
	"github.com/netrixframework/proptest/types"
	"github.com/netrixframework/proptest/util"
)

// Options tune a single property run. Zero values fall back to the
// config defaults; a zero Seed draws a fresh one.
type Options struct {
	MaxValues   int
	MaxAttempts int
	Seed        uint64
	Logger      *log.Logger
}

type runStats struct {
	seed            uint64
	valuesGenerated int
	shrinksAccepted int
}

// Run checks the property against values drawn from the generator. The
// property passes by returning nil; a non-nil error is the failure
// message attached to the counterexample. The first failing value is
// shrunk before being reported, and no further values are drawn after a
// failure.
func Run[T any](g gen.Generator[T], property func(T) error) types.TestResult[T] {
	return RunWithOptions(g, property, Options{})
}

// RunWithOptions is Run with explicit budgets, seed and logger.
func RunWithOptions[T any](g gen.Generator[T], property func(T) error, opts Options) types.TestResult[T] {
	result, _ := run(g, property, opts)
	return result
}

func run[T any](g gen.Generator[T], property func(T) error, opts Options) (types.TestResult[T], runStats) {
	maxValues := opts.MaxValues
	if maxValues == 0 {
		maxValues = config.DefaultMaxValues
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = config.DefaultMaxAttempts
	}
	seed := opts.Seed
	if seed == 0 {
		seed = util.RandomSeed()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger
	}

	rng := util.NewRand(seed)
	stats := runStats{seed: seed}
	logger.With(log.LogParams{"seed": seed}).Debug("Starting property run")

	for i := 0; i < maxValues; i++ {
		rejections := make(map[string]int)
		generated := false
		for attempt := 0; attempt < maxAttempts && !generated; attempt++ {
			result := g.Generate(types.NewLive(rng))
			if result.IsRejected() {
				rejections[result.Reason()]++
				continue
			}
			generated = true
			stats.valuesGenerated++
			if err := property(result.Value()); err != nil {
				shrinker := shrink.NewShrinker(g, property, logger)
				failure := shrinker.Shrink(result.Run(), result.Value(), err.Error())
				stats.shrinksAccepted = shrinker.Accepted()
				return failure, stats
			}
		}
		if !generated {
			return types.CannotGenerate[T](rejections), stats
		}
	}
	return types.Passes[T](), stats
}

// RunNamed runs the property under a name, records a RunReport in the
// root context and logs the outcome.
func RunNamed[T any](name string, g gen.Generator[T], property func(T) error, root *ctx.RootContext) types.TestResult[T] {
	opts := Options{
		MaxValues:   root.Config.MaxValues,
		MaxAttempts: root.Config.MaxAttempts,
		Seed:        root.Config.Seed,
		Logger:      root.Logger,
	}
	if root.Reports.Has(name) {
		root.Logger.With(log.LogParams{"test": name}).Warn("A report with this name exists, the named entry will be replaced")
	}
	result, stats := run(g, property, opts)
	root.Reports.Add(&types.RunReport{
		Name:            name,
		Outcome:         result.String(),
		Seed:            stats.seed,
		ValuesGenerated: stats.valuesGenerated,
		ShrinksAccepted: stats.shrinksAccepted,
	})
	root.Logger.With(log.LogParams{
		"test":   name,
		"values": stats.valuesGenerated,
		"seed":   stats.seed,
	}).Info("Property run complete")
	return result
}
