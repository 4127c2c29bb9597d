// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/cli"
	"github.com/H0llyW00dzZ/certificate-info/src/logger"
	verpkg "github.com/H0llyW00dzZ/certificate-info/src/version"
)

var version string // set by ldflags or defaults to imported version

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

// cleanupGrace is how long main waits for a cancelled command to return.
const cleanupGrace = 6 * time.Second

func main() {
	// stdout carries native messaging frames and MCP traffic
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Println("Received termination signal. Shutting down...")
		// serve needs up to its shutdown timeout to drain connections
		select {
		case err := <-done:
			if err != nil {
				log.Printf("Error during shutdown: %v", err)
			}
		case <-time.After(cleanupGrace):
		}
		os.Exit(130) // Standard exit code for SIGINT
	}

	if cli.OperationPerformedSuccessfully {
		log.Println("certificate-info stopped.")
	}
}
