package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/internal/core"
	"cpu-scheduler-simulator/internal/report"
	"cpu-scheduler-simulator/internal/responses"
	"cpu-scheduler-simulator/internal/schedulers"
	"cpu-scheduler-simulator/internal/workload"
)

type quantumFlags struct {
	quantum float64
	levels  []float64
}

func (q *quantumFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&q.quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().Float64SliceVar(&q.levels, "levels", nil, "MLFQ per-level time quanta, e.g. 5,8 (default from config)")
}

func (q *quantumFlags) options(cmd *cobra.Command) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if cmd.Flags().Changed("quantum") {
		opts.TimeQuantum = q.quantum
	}
	if cmd.Flags().Changed("levels") {
		opts.LevelsTimeQuantum = q.levels
	}
	return opts
}

func newRunCmd() *cobra.Command {
	var algorithm string
	var output string
	var quanta quantumFlags

	cmd := &cobra.Command{
		Use:   "run <workload-file>",
		Short: "Simulate one scheduling algorithm on a workload",
		Long: `Simulate one scheduling algorithm on the processes of a workload file
(.csv, .yaml or .json) and print the Gantt chart and per-process metrics.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			processes, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			result, err := schedulers.Run(a, processes, quanta.options(cmd))
			if err != nil {
				return err
			}
			return writeRun(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", string(schedulers.AlgorithmFCFS), "Algorithm (FCFS, SJF, RR, Priority, MLFQ)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")
	quanta.register(cmd)
	return cmd
}

func writeRun(w io.Writer, output string, result core.RunResult) error {
	switch output {
	case "json":
		return writeJSON(w, responses.NewScheduleResponse(result))
	case "table":
		report.Render(w, result)
		return nil
	}
	return fmt.Errorf("unknown output format %q", output)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
