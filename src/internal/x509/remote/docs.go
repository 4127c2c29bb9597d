// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509remote fetches the leaf certificate presented by a remote TLS
// endpoint and normalizes it into a [certinfo.Record].
//
// Every fetch is bounded by a connect+handshake timeout and always closes its
// socket. Failures are reported as errors wrapping [certinfo.ErrNetwork],
// [certinfo.ErrTimeout] or [certinfo.ErrMalformedCertificate]; the fetcher never
// panics on remote input.
//
// Chain verification is delegated to the TLS stack: an untrusted or
// mismatched certificate fails the handshake like any other network error.
//
// [certinfo.Record]: https://pkg.go.dev/github.com/H0llyW00dzZ/certificate-info/src/certinfo#Record
package x509remote
