// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import (
	"fmt"
	"net"
	"strings"

	"golang.org/x/net/idna"
)

// NormalizeHostname returns the cache key form of a hostname: lower-case
// ASCII (punycode for internationalized names), without port, brackets or
// trailing dot. Invalid input yields [ErrClientRequest].
func NormalizeHostname(raw string) (string, error) {
	host := strings.TrimSpace(raw)
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.Trim(host, "[]"), ".")
	if host == "" {
		return "", fmt.Errorf("%w: empty hostname", ErrClientRequest)
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrClientRequest, err)
	}
	return strings.ToLower(ascii), nil
}
