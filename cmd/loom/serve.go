package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loomui/loom/internal/config"
	"github.com/loomui/loom/pkg/host"
)

func serveCmd() *cobra.Command {
	var (
		addr string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo application",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			server := host.New(host.Config{
				Addr:      addr,
				Title:     cfg.Name,
				Namespace: cfg.Name,
			}, demoApp())

			ctx, stop := signal.NotifyContext(context.Background(),
				os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("starting", "addr", addr)
			return server.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory with loom.json/loom.yaml")
	return cmd
}
