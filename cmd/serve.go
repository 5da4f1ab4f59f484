package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"process-scheduler/api"
	"process-scheduler/internal/metrics"
)

func newServeCmd(c *cli) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				c.cfg.Port = port
			}
			recorder := metrics.NewRecorder()
			handler, err := api.NewSchedulerHandlerImpl(c.cfg, c.logger, recorder)
			if err != nil {
				return err
			}
			app := api.NewApp(handler, recorder)

			addr := fmt.Sprintf(":%d", c.cfg.Port)
			c.logger.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 9095, "Listen port (overrides config)")
	return cmd
}
