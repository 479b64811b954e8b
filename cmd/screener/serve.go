package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/candidate-screener/internal/server"
	"github.com/jonathan/candidate-screener/internal/server/ratelimit"
)

func newServeCmd(c *cli) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long:  `Start an HTTP server that exposes the screening operations as REST endpoints under /v1.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			engine, closeFn, err := c.engine(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			cfg := server.Config{
				Port:         c.cfg.Server.Port,
				ReadTimeout:  c.cfg.Server.ReadTimeout,
				WriteTimeout: c.cfg.Server.WriteTimeout,
				SessionTTL:   c.cfg.Server.SessionTTL,
				Engine:       engine,
				RateLimit:    ratelimit.FromSettings(c.cfg.RateLimit),
				Logger:       c.log,
			}
			if c.cfg.Auth.Enabled() {
				cfg.Auth = &c.cfg.Auth
			}

			if c.cfg.Database.URL != "" {
				store, err := c.connect(ctx)
				if err != nil {
					return err
				}
				defer store.Close()
				if migrate {
					if err := store.Migrate(ctx); err != nil {
						return err
					}
				}
				cfg.Store = store
			} else {
				c.log.Warn("database.url is not set, persistence routes are disabled")
			}

			srv, err := server.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			defer srv.Close()

			c.log.Info("starting server",
				zap.Int("port", cfg.Port),
				zap.Bool("auth", cfg.Auth != nil),
				zap.Bool("persistence", cfg.Store != nil))
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply the database schema before serving")
	_ = c.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	return cmd
}
