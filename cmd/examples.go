package cmd

import (
	"fmt"

	"github.com/netrixframework/proptest/apiserver"
	"github.com/netrixframework/proptest/config"
	"github.com/netrixframework/proptest/context"
	"github.com/netrixframework/proptest/gen"
	"github.com/netrixframework/proptest/log"
	"github.com/netrixframework/proptest/runner"
	"github.com/netrixframework/proptest/util"
	"github.com/spf13/cobra"
)

// ExamplesCmd returns the command which runs the built-in example
// properties and optionally serves the reports
func ExamplesCmd() *cobra.Command {
	var serve bool
	var logLevel string
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Run the built-in example properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseConfig(config.ConfigPath)
			if err != nil {
				cfg = config.Default()
				log.Warn("Could not read config file, using defaults")
			}
			log.Init(cfg.LogConfig)
			defer log.Destroy()
			if logLevel != "" {
				log.SetLevel(logLevel)
			}
			log.Info("Running example properties")
			ctx := context.NewRootContext(cfg, log.DefaultLogger)

			runExamples(ctx)
			failed := 0
			for _, report := range ctx.Reports.All() {
				fmt.Println("--------")
				fmt.Printf("[%s] %s\n", report.Name, report.Outcome)
				if report.Outcome != "Passes" {
					failed++
				}
			}
			if failed > 0 {
				log.Error("Some example properties failed")
			}
			log.Debug("Example properties finished")

			if serve {
				log.With(log.LogParams{"addr": cfg.APIServerAddr}).Info("Serving run reports")
				server := apiserver.NewAPIServer(ctx)
				server.Start()
				<-util.Term()
				server.Stop()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&serve, "serve", false, "Serve the run reports over HTTP after running")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	return cmd
}

func runExamples(ctx *context.RootContext) {
	runner.RunNamed(
		"addition commutes",
		gen.Pair(gen.UintN(1000), gen.UintN(1000)),
		func(p gen.Tuple[uint64, uint64]) error {
			if p.First+p.Second != p.Second+p.First {
				return fmt.Errorf("%d and %d do not commute", p.First, p.Second)
			}
			return nil
		},
		ctx,
	)
	runner.RunNamed(
		"reversing twice is the identity",
		gen.SliceOf(gen.UintN(100)),
		func(xs []uint64) error {
			if !slicesEqual(reverse(reverse(xs)), xs) {
				return fmt.Errorf("double reverse changed %v", xs)
			}
			return nil
		},
		ctx,
	)
	// A failing property, kept to show off shrinking: the reported
	// counterexample converges to a pair summing to exactly 1500, the
	// smallest failing sum.
	runner.RunNamed(
		"sums stay below 1500 (expected to fail)",
		gen.Pair(gen.UintN(1000), gen.UintN(1000)),
		func(p gen.Tuple[uint64, uint64]) error {
			if p.First+p.Second >= 1500 {
				return fmt.Errorf("sum %d is not below 1500", p.First+p.Second)
			}
			return nil
		},
		ctx,
	)
}

func reverse(xs []uint64) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

func slicesEqual(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
