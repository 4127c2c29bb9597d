// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// certinfo classifies the TLS certificates of websites as Domain Control
// Validated (DV) or Identity Validated (IV) and reports expiry urgency.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/certificate-info/cmd/certinfo@latest
//
// # Usage
//
//	certinfo [--config FILE] COMMAND
//
// # Commands
//
//	serve    Run the HTTP classification service (GET /cert?host=NAME)
//	check    Classify live hosts and print a markdown table
//	inspect  Classify the certificates of a PEM, DER or PKCS7 file
//	host     Run as the browser native messaging host
//	mcp      Serve the classify_host and cache_stats tools over MCP stdio
//
// # Configuration
//
// The configuration file (JSON or YAML) is taken from --config or the
// CERTINFO_CONFIG_FILE environment variable. PORT overrides the port of
// server.address.
//
// # Examples
//
// Start the service on port 8000:
//
//	certinfo serve
//
// Query it:
//
//	curl 'http://localhost:8000/cert?host=example.com'
//
// Classify two hosts directly:
//
//	certinfo check example.com github.com
package main
