package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/internal/report"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/workload"
)

func newCompareCmd() *cobra.Command {
	var names []string
	var output string
	var detailed bool
	var quanta quantumFlags

	cmd := &cobra.Command{
		Use:   "compare <workload-file>",
		Short: "Run several algorithms on the same workload side by side",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithms := make([]schedulers.Algorithm, 0, len(names))
			for _, name := range names {
				a, err := schedulers.ParseAlgorithm(name)
				if err != nil {
					return err
				}
				algorithms = append(algorithms, a)
			}

			processes, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			results, err := schedulers.RunAll(processes, quanta.options(cmd), algorithms...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch output {
			case "json":
				return writeJSON(w, responses.NewCompareResponse(results))
			case "table":
				if detailed {
					for _, r := range results {
						report.Render(w, r)
						fmt.Fprintln(w)
					}
				}
				report.RenderComparison(w, results)
				return nil
			}
			return fmt.Errorf("unknown output format %q", output)
		},
	}

	cmd.Flags().StringSliceVar(&names, "algorithms", nil, "Algorithms to compare (default all)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Also print each run's Gantt chart and table")
	quanta.register(cmd)
	return cmd
}
