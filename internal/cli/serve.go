package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-scheduler-simulator/api"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			app := api.NewApp(cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				log.Info("shutting down")
				if err := app.Shutdown(); err != nil {
					log.WithError(err).Error("shutdown")
				}
			}()

			addr := fmt.Sprintf(":%d", cfg.Port)
			log.WithField("addr", addr).Info("listening")
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
	return cmd
}
