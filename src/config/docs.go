// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads and validates certificate-info configuration.
//
// Configuration is read from a JSON or YAML file (detected by extension:
// .json, .yaml or .yml). The path comes from the caller, or from the
// CERTINFO_CONFIG_FILE environment variable when the caller passes an empty
// path. Defaults are applied first, file values override them, and the PORT
// environment variable finally overrides the service listen address.
//
// Example YAML:
//
//	server:
//	  address: ":8000"
//	fetch:
//	  timeoutMillis: 1000
//	  fingerprint: chrome
//	classification:
//	  errorDays: 14
//	  warningDays: 45
//	cache:
//	  ttlSeconds: 3600
//	log:
//	  level: debug
//	  format: json
package config
