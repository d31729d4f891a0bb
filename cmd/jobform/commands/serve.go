package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobform/internal/server"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the application form over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = cfg.Server.Addr
			}
			w, err := newWizard()
			if err != nil {
				return err
			}
			opts, err := renderOptions()
			if err != nil {
				return err
			}
			html, err := newHTMLRenderer()
			if err != nil {
				return err
			}

			srv, err := server.New(w,
				server.WithRenderer(html),
				server.WithRenderOptions(opts),
				server.WithLogger(logger),
				server.WithMode(cfg.Server.Mode),
				server.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
