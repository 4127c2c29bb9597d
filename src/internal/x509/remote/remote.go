// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509remote

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout bounds connect plus handshake.
	DefaultTimeout = 1000 * time.Millisecond
	// DefaultPort is the HTTPS port dialed for every hostname.
	DefaultPort = 443
)

// Options configures a [Fetcher]. Zero values select the defaults.
type Options struct {
	Timeout     time.Duration  // Connect+handshake timeout (default: 1000 ms)
	Port        int            // Remote port (default: 443)
	Fingerprint Fingerprint    // ClientHello shape (default: FingerprintGo)
	RootCAs     *x509.CertPool // Trust roots, nil for the system pool
	RatePerSec  float64        // Outbound handshakes per second, 0 for unlimited
	Burst       int            // Limiter burst (default: 1 when RatePerSec > 0)
}

// Fetcher performs TLS handshakes to read peer certificates.
//
// Thread Safety: Safe for concurrent use.
type Fetcher struct {
	timeout     time.Duration
	port        int
	fingerprint Fingerprint
	rootCAs     *x509.CertPool
	limiter     *rate.Limiter
	dialer      net.Dialer
}

// New creates a Fetcher from opts.
//
// Returns:
//   - *Fetcher: configured fetcher
//   - error: [ErrUnknownFingerprint] if opts.Fingerprint is not recognized
func New(opts Options) (*Fetcher, error) {
	fp, err := ParseFingerprint(string(opts.Fingerprint))
	if err != nil {
		return nil, err
	}

	f := &Fetcher{
		timeout:     opts.Timeout,
		port:        opts.Port,
		fingerprint: fp,
		rootCAs:     opts.RootCAs,
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.port <= 0 {
		f.port = DefaultPort
	}
	if opts.RatePerSec > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		f.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSec), burst)
	}
	return f, nil
}

// Timeout returns the connect+handshake bound applied to every fetch.
func (f *Fetcher) Timeout() time.Duration { return f.timeout }

// Fetch establishes a TLS connection to hostname and returns the unclassified
// record of the leaf certificate.
//
// The connection is closed before Fetch returns on every path. When the
// bounded wait elapses the handshake is aborted and the error wraps
// [certinfo.ErrTimeout].
func (f *Fetcher) Fetch(ctx context.Context, hostname string) (certinfo.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// the limiter wait counts against the same bound as the handshake
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return certinfo.Record{}, fmt.Errorf("%w: rate limit: %v", certinfo.ErrTimeout, err)
		}
	}

	addr := net.JoinHostPort(hostname, strconv.Itoa(f.port))

	var (
		peerCerts []*x509.Certificate
		err       error
	)
	if f.fingerprint == FingerprintGo {
		peerCerts, err = f.handshakeStd(ctx, hostname, addr)
	} else {
		peerCerts, err = f.handshakeUTLS(ctx, hostname, addr)
	}
	if err != nil {
		return certinfo.Record{}, classifyDialError(ctx, addr, err)
	}

	if len(peerCerts) == 0 {
		return certinfo.Record{}, fmt.Errorf("%w: no certificates received from %s", certinfo.ErrMalformedCertificate, addr)
	}

	return certinfo.FromCertificate(peerCerts[0])
}

// handshakeStd dials with crypto/tls and returns the peer certificates.
func (f *Fetcher) handshakeStd(ctx context.Context, hostname, addr string) ([]*x509.Certificate, error) {
	d := &tls.Dialer{
		NetDialer: &f.dialer,
		Config: &tls.Config{
			ServerName: hostname,
			RootCAs:    f.rootCAs,
			MinVersion: tls.VersionTLS12,
		},
	}

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	return conn.(*tls.Conn).ConnectionState().PeerCertificates, nil
}

// classifyDialError wraps err with the matching sentinel.
func classifyDialError(ctx context.Context, addr string, err error) error {
	var netErr net.Error
	if errors.Is(ctx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %s: %v", certinfo.ErrTimeout, addr, err)
	}
	return fmt.Errorf("%w: failed to connect to %s: %v", certinfo.ErrNetwork, addr, err)
}
