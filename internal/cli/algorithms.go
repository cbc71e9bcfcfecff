package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/internal/schedulers"
)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported scheduling algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, a := range schedulers.Algorithms {
				fmt.Fprintln(w, a)
			}
			return nil
		},
	}
}
