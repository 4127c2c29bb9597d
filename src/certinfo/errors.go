// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certinfo

import "errors"

var (
	// ErrNetwork indicates a connect or handshake failure.
	ErrNetwork = errors.New("certinfo: network error")

	// ErrTimeout indicates the bounded connect+handshake wait was exceeded.
	ErrTimeout = errors.New("certinfo: timeout")

	// ErrMalformedCertificate indicates the peer certificate lacks the expected fields.
	ErrMalformedCertificate = errors.New("certinfo: malformed certificate")

	// ErrClientRequest indicates a query with a missing or invalid hostname.
	ErrClientRequest = errors.New("certinfo: invalid client request")

	// ErrParse indicates a classification payload that could not be decoded.
	ErrParse = errors.New("certinfo: malformed payload")

	// ErrFetchFailed indicates the service answered with an empty body,
	// meaning it could not fetch the certificate for the host.
	ErrFetchFailed = errors.New("certinfo: certificate fetch failed")
)

// IsFetchError reports whether err belongs to the fetch path and should be
// surfaced as a FetchError result rather than propagated.
func IsFetchError(err error) bool {
	return errors.Is(err, ErrNetwork) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrMalformedCertificate) ||
		errors.Is(err, ErrFetchFailed)
}
