// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface of certificate-info.
// It implements a Cobra command tree:
//
//   - serve: the HTTP classification service backed by the certificate cache
//   - check: one-shot classification of live hosts, rendered as a markdown table
//   - inspect: offline classification of PEM, DER or PKCS7 files
//   - host: the browser native messaging host driving tab badges and popups
//   - mcp: the classification tools exposed over the Model Context Protocol
//
// Every command shares the --config flag, loaded through the config package.
package cli
