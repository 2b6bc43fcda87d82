package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Rohancherukuri/portfolio/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page over HTTP, re-rendering it on every request",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port or host:port to listen on (env PORT)")
	return cmd
}

func (a *app) serve(ctx context.Context, port string) error {
	if port != "" {
		a.cfg.Port = port
	}
	th, p, err := a.site()
	if err != nil {
		return err
	}

	gin.SetMode(a.cfg.GinMode)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(th, p, a.log).Run(ctx, a.cfg.Addr())
}
