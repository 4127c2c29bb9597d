// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and ServiceLogger for leveled, structured
// logging in the long-running service, native host and MCP modes. ServiceLogger
// is backed by [logrus] and can emit either text or JSON lines.
//
// [logrus]: https://github.com/sirupsen/logrus
package logger
