package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/MeKo-Tech/sortbench/internal/sorting"
	"github.com/spf13/cobra"
)

func newListCommand(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List the available algorithms",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tLABEL")
			for _, alg := range sorting.Algorithms() {
				_, _ = fmt.Fprintf(w, "%s\t%s\n", alg.Name, alg.Label)
			}
			return w.Flush()
		},
	}
}
