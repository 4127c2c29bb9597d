// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certinfo holds the certificate-info domain model shared by the
// classification service and its clients. It provides capabilities to:
//   - Extract a [Record] from the leaf [X.509] certificate presented during a TLS handshake.
//   - Classify validation strength (DV or IV) from the subject Organization attribute.
//   - Derive expiration urgency from NotAfter against configurable [Thresholds].
//   - Carry a tagged [Result] (pending, success, fetch error) between components.
//   - Encode and decode the JSON [Payload] exchanged over HTTP.
//
// The validation level is a coarse signal: a non-empty subject Organization
// yields IV, anything else DV. OV and EV are not distinguished.
//
// [X.509]: https://grokipedia.com/page/X.509
package certinfo
