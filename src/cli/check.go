// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/H0llyW00dzZ/certificate-info/src/service"
	"github.com/spf13/cobra"
)

// ErrCheckFailed is returned when at least one host could not be classified.
var ErrCheckFailed = errors.New("one or more hosts could not be classified")

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check HOST...",
		Short: "Fetch and classify the certificates of the given hosts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return markPerformed(err)
			}
			c, err := newCache(cfg)
			if err != nil {
				return markPerformed(err)
			}

			rows, failed := checkHosts(cmd.Context(), c, args, cfg.Classification.Thresholds(), time.Now())
			if err := renderTable(cmd.OutOrStdout(), classificationHeaders, rows); err != nil {
				return markPerformed(err)
			}
			if failed > 0 {
				return markPerformed(fmt.Errorf("%w (%d of %d)", ErrCheckFailed, failed, len(args)))
			}
			opts.log.Printf("Classified %d host(s).", len(args))
			return markPerformed(nil)
		},
	}
}

// checkHosts resolves every host concurrently and returns one row per host,
// in argument order, plus the number of failures.
func checkHosts(ctx context.Context, resolver service.Resolver, hosts []string, t certinfo.Thresholds, now time.Time) ([][]string, int) {
	rows := make([][]string, len(hosts))
	errs := make([]error, len(hosts))

	var wg sync.WaitGroup
	for i, host := range hosts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec, err := resolver.GetOrFetch(ctx, host)
			if err != nil {
				errs[i] = err
				rows[i] = failureRow(host, err)
				return
			}
			rows[i] = classificationRow(host, certinfo.Evaluate(rec, now, t))
		}()
	}
	wg.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	return rows, failed
}
