// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/client"
	"github.com/H0llyW00dzZ/certificate-info/src/nativehost"
	"github.com/H0llyW00dzZ/certificate-info/src/tabstate"
	"github.com/spf13/cobra"
)

// queryMargin lets the client report its own failure before the tab query times out.
const queryMargin = 250 * time.Millisecond

func newHostCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Run as a browser native messaging host",
		Long: `Reads tab events from stdin and writes badge and popup updates to stdout
using the native messaging framing. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			svcLog, err := newServiceLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			attempts := cfg.Client.Attempts
			if attempts < 0 {
				attempts = 0
			}
			c, err := client.New(client.Options{
				Endpoint:   cfg.Client.Endpoint,
				Timeout:    cfg.Client.Timeout(),
				Attempts:   uint(attempts),
				Thresholds: cfg.Classification.Thresholds(),
			})
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			h := nativehost.New(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), c, svcLog.Entry(),
				tabstate.WithQueryTimeout(queryTimeout(c)),
			)
			return h.Run(ctx)
		},
	}
}

// queryTimeout bounds one tab query by the client's full retry budget.
func queryTimeout(c *client.Client) time.Duration {
	return c.Budget() + queryMargin
}
