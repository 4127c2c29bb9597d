// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	x509certs "github.com/H0llyW00dzZ/certificate-info/src/internal/x509/certs"
	"github.com/spf13/cobra"
)

func newInspectCommand(opts *rootOptions) *cobra.Command {
	var inputFile string

	cmd := &cobra.Command{
		Use:   "inspect -f FILE",
		Short: "Classify the certificates stored in a PEM, DER or PKCS7 file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputFile == "" {
				return markPerformed(ErrInputFileRequired)
			}
			cfg, err := opts.loadConfig()
			if err != nil {
				return markPerformed(err)
			}

			records, err := x509certs.New().ReadFile(inputFile)
			if err != nil {
				return markPerformed(fmt.Errorf("error decoding certificate: %w", err))
			}

			now := time.Now()
			thresholds := cfg.Classification.Thresholds()
			rows := make([][]string, 0, len(records))
			for i, rec := range records {
				target := "leaf"
				if i > 0 {
					target = fmt.Sprintf("#%d", i)
				}
				rows = append(rows, classificationRow(target, certinfo.Evaluate(rec, now, thresholds)))
			}
			return markPerformed(renderTable(cmd.OutOrStdout(), classificationHeaders, rows))
		},
	}
	cmd.Flags().StringVarP(&inputFile, "file", "f", "", "input certificate file (PEM, DER or PKCS7)")
	return cmd
}
