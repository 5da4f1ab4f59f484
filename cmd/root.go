package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"process-scheduler/config"
	"process-scheduler/internal/logging"
)

// cli carries the state PersistentPreRunE prepares for one command tree.
type cli struct {
	configPath string
	debug      bool
	logLevel   string
	logFormat  string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
}

// loadConfig uses the shared config.yaml lookup unless --config names a file.
func (c *cli) loadConfig() (*config.SchedulerConfig, error) {
	if c.configPath == "" {
		return config.GetSchedulerConfig()
	}
	return config.Load(c.configPath)
}

// NewRootCmd creates the root command of the scheduler CLI.
func NewRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "scheduler",
		Short: "Single-CPU process scheduling simulator",
		Long:  "Simulates FCFS, SJF, Priority and Round Robin dispatch over a process set and reports the execution trace and timing metrics.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if c.cfg, err = c.loadConfig(); err != nil {
				return err
			}
			level := c.cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = c.logLevel
			}
			if c.debug {
				level = "debug"
			}
			format := c.cfg.LogFormat
			if cmd.Flags().Changed("log-format") {
				format = c.logFormat
			}
			c.logger = logging.NewLoggerWithWriter(logging.ParseLevel(level), format, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&c.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(c),
		newRunCmd(c),
	)

	return root
}
