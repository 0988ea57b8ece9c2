package cmd

import (
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/sortbench/internal/benchmark"
	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/sorting"
	"github.com/spf13/cobra"
)

// demoArray is sorted with insertion sort at the end of the demo.
var demoArray = []int{2, 5, 1, 2, 3, 5}

func newDemoCommand(a *app) *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Time every algorithm once on 100 random values",
		Long: `Generate 100 random integers in [0, 1000], time each algorithm on its own
copy and print one "label: seconds" line per algorithm. Then print the
quicksort result and the insertion sort of [2 5 1 2 3 5].`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetUint64("seed")
			return a.runDemo(cmd, seed)
		},
	}
	demoCmd.Flags().Uint64("seed", 0, "random seed (0 = time based)")
	return demoCmd
}

func (a *app) runDemo(cmd *cobra.Command, seed uint64) error {
	out := cmd.OutOrStdout()

	gen := generate.DefaultConfig()
	gen.Seed = seed
	input, err := generate.Ints(gen)
	if err != nil {
		return fmt.Errorf("failed to generate input: %w", err)
	}

	suite := benchmark.NewSuite(sorting.Algorithms(), benchmark.DefaultOptions()).
		WithLogger(a.logger).
		WithSink(common.MultiSink(common.NewWriterSink(out), common.NewLogSink(a.logger, slog.LevelDebug)))
	results, err := suite.Run(cmd.Context(), input)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Error != nil {
			return r.Error
		}
		if r.Name == sorting.NameQuick {
			_, _ = fmt.Fprintln(out, r.Output)
		}
	}

	sorted, err := sorting.Insertion(append([]int(nil), demoArray...), len(demoArray))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, sorted)
	return err
}
