// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package client queries the certificate-info HTTP service.
//
// The client retries only when the service itself is unreachable or answers
// with a 5xx status. An empty 200 body means the service could not fetch the
// certificate; that is a definitive answer for this query and is returned as
// [certinfo.ErrFetchFailed] without retrying.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/H0llyW00dzZ/certificate-info/src/certinfo"
	"github.com/H0llyW00dzZ/certificate-info/src/internal/helper/gc"
	"github.com/avast/retry-go/v4"
)

const (
	// DefaultTimeout bounds each attempt.
	DefaultTimeout = 2 * time.Second
	// DefaultAttempts is the number of tries for transient failures.
	DefaultAttempts = 3
	// DefaultDelay is the base backoff between attempts.
	DefaultDelay = 100 * time.Millisecond
	// MaxDelay caps a single backoff.
	MaxDelay = time.Second

	// maxBodySize caps the accepted response size.
	maxBodySize = 64 << 10
)

// errTransient marks failures worth another attempt.
var errTransient = errors.New("transient service failure")

// Options configures a Client.
type Options struct {
	// Endpoint is the /cert URL of the service.
	Endpoint string
	// Timeout bounds each attempt (0 means DefaultTimeout).
	Timeout time.Duration
	// Attempts for transient failures (0 means DefaultAttempts).
	Attempts uint
	// Delay is the base backoff between attempts (0 means DefaultDelay).
	Delay time.Duration
	// Thresholds used to evaluate expiration urgency locally.
	Thresholds certinfo.Thresholds
	// Now is the clock for urgency evaluation (nil means time.Now).
	Now func() time.Time
	// HTTPClient overrides the transport (its Timeout is replaced).
	HTTPClient *http.Client
}

// Client queries the classification service.
//
// Thread Safety: Safe for concurrent use.
type Client struct {
	endpoint   *url.URL
	http       *http.Client
	attempts   uint
	delay      time.Duration
	thresholds certinfo.Thresholds
	now        func() time.Time
}

// New creates a client for the service at opts.Endpoint.
func New(opts Options) (*Client, error) {
	u, err := url.Parse(opts.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid service endpoint %q", opts.Endpoint)
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Attempts == 0 {
		opts.Attempts = DefaultAttempts
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Thresholds == (certinfo.Thresholds{}) {
		opts.Thresholds = certinfo.DefaultThresholds
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	hc := &http.Client{}
	if opts.HTTPClient != nil {
		copied := *opts.HTTPClient
		hc = &copied
	}
	hc.Timeout = opts.Timeout

	return &Client{
		endpoint:   u,
		http:       hc,
		attempts:   opts.Attempts,
		delay:      opts.Delay,
		thresholds: opts.Thresholds,
		now:        opts.Now,
	}, nil
}

// Budget returns the longest Classify can take: every attempt running to
// its timeout plus the backoff between attempts.
func (c *Client) Budget() time.Duration {
	total := time.Duration(c.attempts) * c.http.Timeout
	for n := uint(0); n+1 < c.attempts; n++ {
		d := c.delay << n
		if d <= 0 || d > MaxDelay {
			d = MaxDelay
		}
		total += d
	}
	return total
}

// Query classifies hostname, collapsing every failure into a FetchError result.
func (c *Client) Query(ctx context.Context, hostname string) certinfo.Result {
	cl, err := c.Classify(ctx, hostname)
	if err != nil {
		return certinfo.FetchError(err)
	}
	return certinfo.Success(cl)
}

// Classify asks the service about hostname and evaluates the answer.
//
// Returns:
//   - certinfo.Classification: On success
//   - error: [certinfo.ErrFetchFailed] for an empty answer, [certinfo.ErrParse]
//     for an undecodable one, [certinfo.ErrClientRequest] when the service
//     rejects the hostname, and [certinfo.ErrTimeout] or [certinfo.ErrNetwork]
//     when the service could not be reached after all attempts
func (c *Client) Classify(ctx context.Context, hostname string) (certinfo.Classification, error) {
	target := *c.endpoint
	q := target.Query()
	q.Set("host", hostname)
	target.RawQuery = q.Encode()

	var body []byte
	err := retry.Do(
		func() error {
			b, err := c.get(ctx, target.String())
			if err != nil {
				return err
			}
			body = b
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(MaxDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool { return errors.Is(err, errTransient) }),
	)
	if err != nil {
		return certinfo.Classification{}, err
	}

	return certinfo.ParsePayload(body, c.now(), c.thresholds)
}

// get performs one attempt.
func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", certinfo.ErrClientRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w: %v", errTransient, certinfo.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %w: %v", errTransient, certinfo.ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: service rejected hostname", certinfo.ErrClientRequest)
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: %w: service returned %d", errTransient, certinfo.ErrNetwork, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d", certinfo.ErrParse, resp.StatusCode)
	}

	body, err := gc.ReadAll(resp.Body, maxBodySize)
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %w: %v", errTransient, certinfo.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", certinfo.ErrParse, err)
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
