package cmd

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/MeKo-Tech/sortbench/internal/sorting"
	"github.com/spf13/cobra"
)

func newSortCommand(a *app) *cobra.Command {
	sortCmd := &cobra.Command{
		Use:   "sort [integers...]",
		Short: "Sort the given integers with one algorithm",
		Long: `Sort the integers given as arguments and print the result.
The timing is reported through the log at info level.

Examples:
  sortbench sort 5 3 9 1
  sortbench sort --algorithm bubble -- 4 -2 7`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("algorithm")
			return a.runSort(cmd, name, args)
		},
	}
	sortCmd.Flags().StringP("algorithm", "a", sorting.NameQuick, "algorithm to use")
	return sortCmd
}

func (a *app) runSort(cmd *cobra.Command, name string, args []string) error {
	alg, err := sorting.Lookup(name)
	if err != nil {
		return err
	}

	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", arg, err)
		}
		values[i] = v
	}

	var sorted []int
	sink := common.NewLogSink(a.logger, slog.LevelInfo)
	err = common.Measure(alg.Label, sink, func() error {
		var err error
		sorted, err = alg.Sort(values, len(values))
		return err
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), sorted)
	return err
}
