// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509remote

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"strings"

	utls "github.com/refraction-networking/utls"
)

// Fingerprint selects the ClientHello presented during the handshake.
//
// Some front ends serve a different certificate to clients that do not look
// like a browser; a browser fingerprint makes the fetched certificate match
// what the user's browser sees.
type Fingerprint string

const (
	// FingerprintGo uses the crypto/tls ClientHello.
	FingerprintGo Fingerprint = "go"
	// FingerprintChrome mimics the latest Chrome supported by [uTLS].
	//
	// [uTLS]: https://github.com/refraction-networking/utls
	FingerprintChrome Fingerprint = "chrome"
	// FingerprintFirefox mimics the latest Firefox supported by uTLS.
	FingerprintFirefox Fingerprint = "firefox"
	// FingerprintSafari mimics the latest Safari supported by uTLS.
	FingerprintSafari Fingerprint = "safari"
)

// ErrUnknownFingerprint indicates an unsupported fingerprint name.
var ErrUnknownFingerprint = errors.New("x509remote: unknown fingerprint")

// ParseFingerprint validates a fingerprint name. The empty string selects [FingerprintGo].
func ParseFingerprint(name string) (Fingerprint, error) {
	switch fp := Fingerprint(strings.ToLower(strings.TrimSpace(name))); fp {
	case "":
		return FingerprintGo, nil
	case FingerprintGo, FingerprintChrome, FingerprintFirefox, FingerprintSafari:
		return fp, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFingerprint, name)
	}
}

// helloID maps a browser fingerprint to its uTLS ClientHello.
func (fp Fingerprint) helloID() utls.ClientHelloID {
	switch fp {
	case FingerprintFirefox:
		return utls.HelloFirefox_Auto
	case FingerprintSafari:
		return utls.HelloSafari_Auto
	default:
		return utls.HelloChrome_Auto
	}
}

// handshakeUTLS dials addr and performs a uTLS handshake with the
// configured browser fingerprint.
func (f *Fetcher) handshakeUTLS(ctx context.Context, hostname, addr string) ([]*x509.Certificate, error) {
	raw, err := f.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	conn := utls.UClient(raw, &utls.Config{
		ServerName: hostname,
		RootCAs:    f.rootCAs,
	}, f.fingerprint.helloID())
	defer conn.Close()

	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, err
	}
	return conn.ConnectionState().PeerCertificates, nil
}
