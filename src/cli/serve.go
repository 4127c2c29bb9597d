// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/service"
	"github.com/spf13/cobra"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP server.
const shutdownTimeout = 5 * time.Second

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP classification service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			svcLog, err := newServiceLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			c, err := newCache(cfg)
			if err != nil {
				return err
			}

			srv := service.New(c, cfg.Server.Address,
				service.WithThresholds(cfg.Classification.Thresholds()),
				service.WithLogger(svcLog.Entry()),
			)
			return runServer(cmd.Context(), srv)
		},
	}
}

// server is the lifecycle of [service.Server].
type server interface {
	Run() error
	Close(ctx context.Context) error
}

// runServer runs srv until it fails or ctx is done, then shuts it down.
func runServer(ctx context.Context, srv server) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Run() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Close(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
