package runner

import (
	"fmt"
	"testing"

	"github.com/netrixframework/proptest/config"
	ctx "github.com/netrixframework/proptest/context"
	"github.com/netrixframework/proptest/gen"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/types"
)

func TestRunPassesWhenPropertyHolds(t *testing.T) {
	result := RunWithOptions(gen.UintN(10), func(v uint64) error {
		if v > 10 {
			return fmt.Errorf("%d is above 10", v)
		}
		return nil
	}, Options{Seed: 42})
	if result.Verdict != types.Pass {
		t.Errorf("expected Pass, got %s", result)
	}
}

func TestRunFailsConstantWithoutShrinking(t *testing.T) {
	result := RunWithOptions(gen.Constant(42), func(v int) error {
		if v != 100 {
			return fmt.Errorf("got something other than 100")
		}
		return nil
	}, Options{Seed: 42})
	if result.Verdict != types.Fail {
		t.Fatalf("expected Fail, got %s", result)
	}
	if result.Value != 42 {
		t.Errorf("expected the constant 42, got %d", result.Value)
	}
	if result.Message != "got something other than 100" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestRunShrinksFailureToMinimum(t *testing.T) {
	result := RunWithOptions(gen.UintN(10), func(v uint64) error {
		return fmt.Errorf("always fails")
	}, Options{Seed: 7})
	if result.Verdict != types.Fail {
		t.Fatalf("expected Fail, got %s", result)
	}
	if result.Value != 0 {
		t.Errorf("expected the shrunk value 0, got %d", result.Value)
	}
}

func TestRunShrinksToLowerBound(t *testing.T) {
	result := RunWithOptions(gen.UintBetween(3, 10), func(v uint64) error {
		return fmt.Errorf("always fails")
	}, Options{Seed: 7})
	if result.Value != 3 {
		t.Errorf("expected the shrunk value 3, got %d", result.Value)
	}
}

func TestRunExhaustsOnReject(t *testing.T) {
	result := RunWithOptions(gen.Reject[int]("x"), func(int) error {
		return nil
	}, Options{Seed: 7})
	if result.Verdict != types.Exhausted {
		t.Fatalf("expected Exhausted, got %s", result)
	}
	if result.Rejections["x"] != config.DefaultMaxAttempts {
		t.Errorf("expected %d tallied rejections, got %d", config.DefaultMaxAttempts, result.Rejections["x"])
	}
}

func TestRunExhaustsOnImpossibleFilter(t *testing.T) {
	g := gen.UintN(10).Filter(func(v uint64) bool { return v > 100 })
	result := RunWithOptions(g, func(uint64) error { return nil }, Options{Seed: 7})
	if result.Verdict != types.Exhausted {
		t.Fatalf("expected Exhausted, got %s", result)
	}
	if result.Rejections[gen.RejectedByFilter] == 0 {
		t.Errorf("expected filter rejections in the tally, got %v", result.Rejections)
	}
}

func TestRunIsDeterministicGivenSeed(t *testing.T) {
	property := func(v uint64) error {
		if v%7 == 3 {
			return fmt.Errorf("%d is unlucky", v)
		}
		return nil
	}
	first := RunWithOptions(gen.UintN(1000), property, Options{Seed: 99})
	second := RunWithOptions(gen.UintN(1000), property, Options{Seed: 99})
	if first.Verdict != second.Verdict || first.Value != second.Value || first.Message != second.Message {
		t.Errorf("same seed produced different results: %s vs %s", first, second)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	failures := 0
	RunWithOptions(gen.UintN(10), func(v uint64) error {
		failures++
		return fmt.Errorf("always fails")
	}, Options{Seed: 5, MaxValues: 50})
	// one failing draw plus the shrinker's replays; the outer loop must
	// not draw a second value. A single choice admits few candidates.
	if failures > 40 {
		t.Errorf("runner kept drawing after a failure: %d property calls", failures)
	}
}

func TestRunNamedRecordsReport(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11
	root := ctx.NewRootContext(cfg, log.DefaultLogger)
	result := RunNamed("unsigned ints stay in range", gen.UintN(10), func(v uint64) error {
		if v > 10 {
			return fmt.Errorf("%d is above 10", v)
		}
		return nil
	}, root)
	if result.Verdict != types.Pass {
		t.Fatalf("expected Pass, got %s", result)
	}
	report, ok := root.Reports.Get("unsigned ints stay in range")
	if !ok {
		t.Fatalf("no report recorded")
	}
	if report.Outcome != "Passes" {
		t.Errorf("unexpected outcome: %q", report.Outcome)
	}
	if report.ValuesGenerated != cfg.MaxValues {
		t.Errorf("expected %d values generated, got %d", cfg.MaxValues, report.ValuesGenerated)
	}
	if report.Seed != 11 {
		t.Errorf("expected the configured seed, got %d", report.Seed)
	}
}
