// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/certificate-info/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/certificate-info/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrInputFileRequired is returned when inspect runs without a file.
	ErrInputFileRequired = errors.New("input certificate file is required")

	// OperationPerformed indicates whether a one-shot command (check or inspect) ran.
	OperationPerformed bool
	// OperationPerformedSuccessfully indicates that such a command completed without error.
	OperationPerformedSuccessfully bool
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configFile string
	log        logger.Logger
}

// Execute runs the root command with os.Args under ctx.
//
// Parameters:
//   - ctx: Cancelled on SIGINT/SIGTERM; long-running commands stop on it
//   - version: Reported by --version and the MCP server
//   - log: Destination for progress messages
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	if log == nil {
		log = logger.NewCLILogger()
	}
	opts := &rootOptions{log: log}
	exe := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   exe,
		Short: "Certificate validation level and expiry classifier",
		Long: `Classifies the TLS certificate of a website as Domain Control Validated (DV)
or Identity Validated (IV), and reports how close it is to expiring.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: fmt.Sprintf(`  %[1]s serve --config config.yaml
  %[1]s check example.com github.com
  %[1]s inspect -f cert.pem`, exe),
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "configuration file (JSON or YAML)")

	rootCmd.AddCommand(
		newServeCommand(opts),
		newCheckCommand(opts),
		newInspectCommand(opts),
		newHostCommand(opts),
		newMCPCommand(opts, version),
	)
	return rootCmd
}

// markPerformed records the outcome of a one-shot command.
func markPerformed(err error) error {
	OperationPerformed = true
	OperationPerformedSuccessfully = err == nil
	return err
}
