package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg *config.SchedulerConfig
)

// NewRootCmd creates the root cobra command for the cpusim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusim",
		Short: "cpusim: CPU scheduling simulator",
		Long:  "cpusim simulates FCFS, SJF, Round Robin, Priority and MLFQ scheduling and reports Gantt charts and waiting/turnaround metrics.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.LoadSchedulerConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = c

			level := cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = flagLogLevel
			}
			if flagDebug {
				level = "debug"
			}
			format := cfg.LogFormat
			if cmd.Flags().Changed("log-format") {
				format = flagLogFormat
			}
			return logging.Configure(level, format, cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newServeCmd(),
		newAlgorithmsCmd(),
	)

	return root
}
